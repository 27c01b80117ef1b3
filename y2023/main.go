// Command y2023 solves the Advent of Code 2023 puzzles.
//
// Each solution is a method D{day}p{part} on solver. The doc comment of the
// method holds the puzzle's example as "want=<answer>" followed by the
// example input; it is checked before the real input is solved.
package main

import (
	"embed"

	"github.com/almanac-dev/aoc"
)

//go:embed day??.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}

func main() {
	aoc.Run(2023, sources, &solver{})
}
