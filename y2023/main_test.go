package main

import (
	"testing"

	"github.com/almanac-dev/aoc"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	require.NoError(t, aoc.CheckSamples(sources, &solver{}))
}
