package main

import (
	"regexp"
	"strconv"

	"github.com/almanac-dev/aoc"
	"github.com/pkg/errors"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

var numberRx = regexp.MustCompile(`\d+`)

// partNumber is a number in the schematic, starting at at and width digits
// long.
type partNumber struct {
	value int
	at    aoc.Pt
	width int
}

type schematic struct {
	grid    aoc.Grid[byte]
	numbers []partNumber
}

func parseSchematic(s string) (schematic, error) {
	g, err := aoc.ByteGrid(aoc.Lines(s))
	if err != nil {
		return schematic{}, errors.Wrap(err, "schematic")
	}
	sc := schematic{grid: g}
	for y, row := range g {
		for _, loc := range numberRx.FindAllIndex(row, -1) {
			n, err := strconv.Atoi(string(row[loc[0]:loc[1]]))
			if err != nil {
				return schematic{}, errors.Wrapf(err, "line %d", y+1)
			}
			sc.numbers = append(sc.numbers, partNumber{
				value: n,
				at:    aoc.Pt{X: loc[0], Y: y},
				width: loc[1] - loc[0],
			})
		}
	}
	return sc, nil
}

func isSymbol(c byte) bool {
	switch {
	case c == '.', c == '_':
		return false
	case '0' <= c && c <= '9', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return false
	}
	return true
}

func isGear(c byte) bool {
	return c == '*'
}

// adjacent returns the points touching n, diagonals included, whose byte
// satisfies match.
func (sc schematic) adjacent(n partNumber, match func(byte) bool) set.Set[aoc.Pt] {
	out := make(set.Set[aoc.Pt])
	for x := n.at.X; x < n.at.X+n.width; x++ {
		aoc.Pt{X: x, Y: n.at.Y}.ForNeighbors(func(p aoc.Pt) bool {
			if c, ok := sc.grid.AtOk(p); ok && match(c) {
				out.Add(p)
			}
			return true
		})
	}
	return out
}

func (sc schematic) partNumberSum() int {
	sum := 0
	for _, n := range sc.numbers {
		if len(sc.adjacent(n, isSymbol)) > 0 {
			sum += n.value
		}
	}
	return sum
}

// gears returns, for every '*', the numbers touching it.
func (sc schematic) gears() map[aoc.Pt][]int {
	var gears map[aoc.Pt][]int
	for _, n := range sc.numbers {
		for p := range sc.adjacent(n, isGear) {
			mak.Set(&gears, p, append(gears[p], n.value))
		}
	}
	return gears
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	return aoc.Parse(s.Puzzle, parseSchematic).partNumberSum()
}

// want=467835
func (s solver) D3p2() any {
	sum := 0
	for p, nums := range aoc.Parse(s.Puzzle, parseSchematic).gears() {
		if len(nums) != 2 {
			continue
		}
		s.Debugf("gear at %v: %v", p, nums)
		sum += aoc.Product(nums...)
	}
	return sum
}
