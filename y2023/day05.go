package main

import (
	"math"
	"regexp"
	"strings"

	"github.com/almanac-dev/aoc"
	"github.com/pkg/errors"
)

var stageHeaderRx = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

// almanac is a list of seeds and the stages that take a seed number to a
// location number.
type almanac struct {
	seeds  []int
	stages []aoc.RuleSet
}

// parseRule parses "<destination start> <source start> <length>".
func parseRule(line string) (aoc.MappingRule, error) {
	f, err := aoc.Fields(line)
	if err != nil {
		return aoc.MappingRule{}, err
	}
	if len(f) != 3 {
		return aoc.MappingRule{}, errors.Errorf("got %d fields in %q; want 3", len(f), line)
	}
	m := aoc.MappingRule{DestinationStart: f[0], SourceStart: f[1], Length: f[2]}
	switch {
	case m.DestinationStart < 0 || m.SourceStart < 0:
		return aoc.MappingRule{}, errors.Errorf("negative start in %q", line)
	case m.Length <= 0:
		return aoc.MappingRule{}, errors.Errorf("non-positive length in %q", line)
	case m.SourceStart > math.MaxInt-m.Length || m.DestinationStart > math.MaxInt-m.Length:
		return aoc.MappingRule{}, errors.Errorf("rule %q overflows", line)
	}
	return m, nil
}

func parseStage(lines []string) (aoc.RuleSet, error) {
	h := stageHeaderRx.FindStringSubmatch(strings.TrimSpace(lines[0]))
	if h == nil {
		return aoc.RuleSet{}, errors.Errorf("bad map header %q", lines[0])
	}
	var rules []aoc.MappingRule
	for _, line := range lines[1:] {
		m, err := parseRule(line)
		if err != nil {
			return aoc.RuleSet{}, errors.Wrapf(err, "%s-to-%s", h[1], h[2])
		}
		rules = append(rules, m)
	}
	return aoc.NewRuleSet(h[1], h[2], rules...), nil
}

func parseAlmanac(s string) (almanac, error) {
	secs := aoc.Sections(s)
	if len(secs) == 0 {
		return almanac{}, errors.New("empty almanac")
	}
	rest, ok := strings.CutPrefix(secs[0][0], "seeds:")
	if !ok || len(secs[0]) != 1 {
		return almanac{}, errors.Errorf("want a single seeds line, got %q", secs[0])
	}
	seeds, err := aoc.Fields(rest)
	if err != nil {
		return almanac{}, errors.Wrap(err, "seeds")
	}
	for _, n := range seeds {
		if n < 0 {
			return almanac{}, errors.Errorf("negative seed %d", n)
		}
	}
	a := almanac{seeds: seeds}
	for _, sec := range secs[1:] {
		st, err := parseStage(sec)
		if err != nil {
			return almanac{}, err
		}
		if n := len(a.stages); n > 0 && a.stages[n-1].To != st.From {
			return almanac{}, errors.Errorf("%v does not follow %v", st, a.stages[n-1])
		}
		a.stages = append(a.stages, st)
	}
	return a, nil
}

func (a almanac) location(seed int) int {
	for _, st := range a.stages {
		seed = st.Map(seed)
	}
	return seed
}

// seedRanges reads the seeds as (start, length) pairs.
func (a almanac) seedRanges() ([]aoc.Range, error) {
	if len(a.seeds)%2 != 0 {
		return nil, errors.Errorf("odd number of seed values (%d)", len(a.seeds))
	}
	var out []aoc.Range
	for i := 0; i < len(a.seeds); i += 2 {
		start, n := a.seeds[i], a.seeds[i+1]
		if n == 0 {
			continue
		}
		if start > math.MaxInt-n {
			return nil, errors.Errorf("seed range %d+%d overflows", start, n)
		}
		out = append(out, aoc.Range{Lo: start, Hi: start + n - 1})
	}
	return out, nil
}

// lowestRangeLocation returns the lowest location any seed range reaches.
func (a almanac) lowestRangeLocation() (int, error) {
	seeds, err := a.seedRanges()
	if err != nil {
		return 0, err
	}
	loc, ok := aoc.MinLo(aoc.Chain(seeds, a.stages...))
	if !ok {
		return 0, errors.New("no seeds")
	}
	return loc, nil
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := aoc.Parse(s.Puzzle, parseAlmanac)
	lowest := math.MaxInt
	for _, seed := range a.seeds {
		loc := a.location(seed)
		s.Debugf("seed %d -> location %d", seed, loc)
		lowest = min(lowest, loc)
	}
	return lowest
}

// want=46
func (s solver) D5p2() any {
	return aoc.MustGet(aoc.Parse(s.Puzzle, parseAlmanac).lowestRangeLocation())
}
