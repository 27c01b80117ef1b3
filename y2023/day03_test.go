package main

import (
	"testing"

	"github.com/almanac-dev/aoc"
	"github.com/stretchr/testify/require"
)

const schematicSample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestParseSchematic(t *testing.T) {
	sc, err := parseSchematic(schematicSample)
	require.NoError(t, err)
	require.Len(t, sc.numbers, 10)
	require.Equal(t, partNumber{value: 467, at: aoc.Pt{X: 0, Y: 0}, width: 3}, sc.numbers[0])
	require.Equal(t, partNumber{value: 598, at: aoc.Pt{X: 5, Y: 9}, width: 3}, sc.numbers[9])
	require.Equal(t, 4361, sc.partNumberSum())
}

func TestGears(t *testing.T) {
	sc, err := parseSchematic(schematicSample)
	require.NoError(t, err)
	require.Equal(t, map[aoc.Pt][]int{
		{X: 3, Y: 1}: {467, 35},
		{X: 3, Y: 4}: {617},
		{X: 5, Y: 8}: {755, 598},
	}, sc.gears())
}

func TestSymbolAtEdges(t *testing.T) {
	sc, err := parseSchematic("12.\n..#\n")
	require.NoError(t, err)
	require.Equal(t, 12, sc.partNumberSum())

	sc, err = parseSchematic("1..\n..#\n")
	require.NoError(t, err)
	require.Equal(t, 0, sc.partNumberSum())
}

func TestParseSchematicRagged(t *testing.T) {
	_, err := parseSchematic("...\n..\n")
	require.ErrorContains(t, err, "line 2")
}
