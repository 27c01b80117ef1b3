package main

import (
	"strconv"
	"strings"

	"github.com/almanac-dev/aoc"
	"github.com/pkg/errors"
	"tailscale.com/util/set"
)

type card struct {
	id      int
	winning []int
	have    []int
}

// matches returns how many winning numbers the card holds.
func (c card) matches() int {
	have := make(set.Set[int])
	for _, n := range c.have {
		have.Add(n)
	}
	count := 0
	for _, n := range c.winning {
		if have.Contains(n) {
			count++
		}
	}
	return count
}

func (c card) points() int {
	m := c.matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func parseCard(line string) (card, error) {
	head, nums, ok := strings.Cut(line, ":")
	if !ok {
		return card{}, errors.Errorf("no ':' in %q", line)
	}
	f := strings.Fields(head)
	if len(f) != 2 || f[0] != "Card" {
		return card{}, errors.Errorf("bad card header %q", head)
	}
	id, err := strconv.Atoi(f[1])
	if err != nil {
		return card{}, errors.Wrap(err, "card id")
	}
	w, h, ok := strings.Cut(nums, "|")
	if !ok {
		return card{}, errors.Errorf("card %d: no '|'", id)
	}
	c := card{id: id}
	if c.winning, err = aoc.Fields(w); err != nil {
		return card{}, errors.Wrapf(err, "card %d winning numbers", id)
	}
	if c.have, err = aoc.Fields(h); err != nil {
		return card{}, errors.Wrapf(err, "card %d numbers", id)
	}
	return c, nil
}

func parseCards(s string) ([]card, error) {
	var cards []card
	for i, line := range aoc.Lines(s) {
		c, err := parseCard(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// totalCards returns how many cards end up held when each card with m
// matches wins a copy of each of the next m cards, per copy held.
func totalCards(cards []card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		last := min(i+c.matches(), len(cards)-1)
		for j := i + 1; j <= last; j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	sum := 0
	for _, c := range aoc.Parse(s.Puzzle, parseCards) {
		sum += c.points()
	}
	return sum
}

// want=30
func (s solver) D4p2() any {
	return totalCards(aoc.Parse(s.Puzzle, parseCards))
}
