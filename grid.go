package aoc

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

// AtOk returns the value at p, or false if p is outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[0]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// ByteGrid parses lines into a grid of bytes. All lines must have the same
// length.
func ByteGrid(lines []string) (Grid[byte], error) {
	g := make(Grid[byte], 0, len(lines))
	for y, line := range lines {
		if y > 0 && len(line) != len(g[0]) {
			return nil, errors.Errorf("line %d: width %d; want %d", y+1, len(line), len(g[0]))
		}
		g = append(g, []byte(line))
	}
	return g, nil
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f with each of the 8 points surrounding p until f
// returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

