package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/almanac-dev/aoc"
	"github.com/pkg/errors"
)

type race struct {
	time, record int
}

func (r race) beats(hold int) bool {
	return hold*(r.time-hold) > r.record
}

// waysToWin returns how many hold times in [0, time] go further than the
// record. The hold times that win are those strictly between the roots of
// h^2 - time*h + record.
func (r race) waysToWin() int {
	x1, x2, ok := aoc.SolveQuad(1, -r.time, r.record)
	if !ok {
		return 0
	}
	lo, hi := int(math.Floor(x2))+1, int(math.Ceil(x1))-1
	lo, hi = max(lo, 0), min(hi, r.time)
	// Correct for float rounding near the roots.
	for lo > 0 && r.beats(lo-1) {
		lo--
	}
	for lo <= hi && !r.beats(lo) {
		lo++
	}
	for hi < r.time && r.beats(hi+1) {
		hi++
	}
	for hi >= lo && !r.beats(hi) {
		hi--
	}
	return max(0, hi-lo+1)
}

// raceLines returns the values of the "Time:" and "Distance:" lines.
func raceLines(s string) (times, records string, err error) {
	lines := aoc.Lines(s)
	if len(lines) != 2 {
		return "", "", errors.Errorf("got %d lines; want 2", len(lines))
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return "", "", errors.Errorf("want Time line, got %q", lines[0])
	}
	records, ok = strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return "", "", errors.Errorf("want Distance line, got %q", lines[1])
	}
	return times, records, nil
}

func parseRaces(s string) ([]race, error) {
	tl, rl, err := raceLines(s)
	if err != nil {
		return nil, err
	}
	times, err := aoc.Fields(tl)
	if err != nil {
		return nil, errors.Wrap(err, "times")
	}
	records, err := aoc.Fields(rl)
	if err != nil {
		return nil, errors.Wrap(err, "distances")
	}
	if len(times) != len(records) {
		return nil, errors.Errorf("%d times but %d distances", len(times), len(records))
	}
	races := make([]race, len(times))
	for i := range times {
		if times[i] < 0 || records[i] < 0 {
			return nil, errors.Errorf("race %d: negative time or distance", i+1)
		}
		races[i] = race{time: times[i], record: records[i]}
	}
	return races, nil
}

// parseKernedRace reads each line as a single number, ignoring the spaces
// between digits.
func parseKernedRace(s string) (race, error) {
	tl, rl, err := raceLines(s)
	if err != nil {
		return race{}, err
	}
	if strings.Contains(tl, "-") || strings.Contains(rl, "-") {
		return race{}, errors.New("negative time or distance")
	}
	t, err := strconv.Atoi(strings.Join(numberRx.FindAllString(tl, -1), ""))
	if err != nil {
		return race{}, errors.Wrap(err, "time")
	}
	d, err := strconv.Atoi(strings.Join(numberRx.FindAllString(rl, -1), ""))
	if err != nil {
		return race{}, errors.Wrap(err, "distance")
	}
	return race{time: t, record: d}, nil
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	var ways []int
	for _, r := range aoc.Parse(s.Puzzle, parseRaces) {
		ways = append(ways, r.waysToWin())
	}
	return aoc.Product(ways...)
}

// want=71503
func (s solver) D6p2() any {
	return aoc.Parse(s.Puzzle, parseKernedRace).waysToWin()
}
