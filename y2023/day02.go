package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/almanac-dev/aoc"
	"github.com/pkg/errors"
)

var (
	gameRx  = regexp.MustCompile(`^Game (\d+): (.*)$`)
	cubesRx = regexp.MustCompile(`^(\d+) (red|green|blue)$`)
)

// cubes is a count of cubes per colour.
type cubes struct {
	red, green, blue int
}

func (c cubes) within(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubes) atLeast(o cubes) cubes {
	return cubes{max(c.red, o.red), max(c.green, o.green), max(c.blue, o.blue)}
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id     int
	rounds []cubes
}

func (g game) possible(bag cubes) bool {
	for _, r := range g.rounds {
		if !r.within(bag) {
			return false
		}
	}
	return true
}

// fewest returns the smallest bag that makes g possible.
func (g game) fewest() cubes {
	var c cubes
	for _, r := range g.rounds {
		c = c.atLeast(r)
	}
	return c
}

func parseRound(s string) (cubes, error) {
	var c cubes
	for _, draw := range strings.Split(s, ",") {
		m := cubesRx.FindStringSubmatch(strings.TrimSpace(draw))
		if m == nil {
			return cubes{}, errors.Errorf("bad draw %q", draw)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return cubes{}, errors.Wrapf(err, "draw %q", draw)
		}
		switch m[2] {
		case "red":
			c.red += n
		case "green":
			c.green += n
		case "blue":
			c.blue += n
		}
	}
	return c, nil
}

func parseGame(line string) (game, error) {
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return game{}, errors.Errorf("not a game: %q", line)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return game{}, errors.Wrap(err, "game id")
	}
	g := game{id: id}
	for _, s := range strings.Split(m[2], ";") {
		r, err := parseRound(s)
		if err != nil {
			return game{}, errors.Wrapf(err, "game %d", id)
		}
		g.rounds = append(g.rounds, r)
	}
	return g, nil
}

func parseGames(s string) ([]game, error) {
	var games []game
	for i, line := range aoc.Lines(s) {
		g, err := parseGame(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		games = append(games, g)
	}
	return games, nil
}

var bag = cubes{red: 12, green: 13, blue: 14}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	sum := 0
	for _, g := range aoc.Parse(s.Puzzle, parseGames) {
		if g.possible(bag) {
			sum += g.id
		}
	}
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	for _, g := range aoc.Parse(s.Puzzle, parseGames) {
		sum += g.fewest().power()
	}
	return sum
}
