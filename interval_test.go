package aoc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func rule(dst, src, n int) MappingRule {
	return MappingRule{SourceStart: src, DestinationStart: dst, Length: n}
}

// sampleStages is the seed-to-location almanac from the day 5 example.
func sampleStages() []RuleSet {
	return []RuleSet{
		NewRuleSet("seed", "soil", rule(50, 98, 2), rule(52, 50, 48)),
		NewRuleSet("soil", "fertilizer", rule(0, 15, 37), rule(37, 52, 2), rule(39, 0, 15)),
		NewRuleSet("fertilizer", "water", rule(49, 53, 8), rule(0, 11, 42), rule(42, 0, 7), rule(57, 7, 4)),
		NewRuleSet("water", "light", rule(88, 18, 7), rule(18, 25, 70)),
		NewRuleSet("light", "temperature", rule(45, 77, 23), rule(81, 45, 19), rule(68, 64, 13)),
		NewRuleSet("temperature", "humidity", rule(0, 69, 1), rule(1, 0, 69)),
		NewRuleSet("humidity", "location", rule(60, 56, 37), rule(56, 93, 4)),
	}
}

func TestNewRuleSetSorts(t *testing.T) {
	rs := NewRuleSet("a", "b", rule(49, 53, 8), rule(0, 11, 42), rule(42, 0, 7), rule(57, 7, 4))
	var starts []int
	for _, m := range rs.Rules {
		starts = append(starts, m.SourceStart)
	}
	require.Equal(t, []int{0, 7, 11, 53}, starts)
	require.Equal(t, "a-to-b", rs.String())
}

func TestRuleSetMap(t *testing.T) {
	rs := sampleStages()[0]
	for in, want := range map[int]int{
		0: 0, 1: 1, 48: 48, 49: 49,
		50: 52, 51: 53, 96: 98, 97: 99,
		98: 50, 99: 51, 100: 100,
	} {
		require.Equal(t, want, rs.Map(in), "Map(%d)", in)
	}
}

func TestRemap(t *testing.T) {
	tests := []struct {
		name  string
		rules RuleSet
		in    Range
		want  []Range
	}{
		{
			name:  "no rules",
			rules: NewRuleSet("a", "b"),
			in:    Range{3, 9},
			want:  []Range{{3, 9}},
		},
		{
			name:  "rules below and above",
			rules: NewRuleSet("a", "b", rule(100, 0, 10), rule(200, 50, 10)),
			in:    Range{10, 49},
			want:  []Range{{10, 49}},
		},
		{
			name:  "full containment",
			rules: NewRuleSet("a", "b", rule(50, 98, 2)),
			in:    Range{98, 99},
			want:  []Range{{50, 51}},
		},
		{
			name:  "partial overlap with passthrough",
			rules: NewRuleSet("a", "b", rule(52, 50, 48)),
			in:    Range{45, 96},
			want:  []Range{{45, 49}, {52, 98}},
		},
		{
			name:  "trailing passthrough",
			rules: NewRuleSet("a", "b", rule(0, 10, 5)),
			in:    Range{12, 20},
			want:  []Range{{2, 4}, {15, 20}},
		},
		{
			name:  "gap between rules",
			rules: NewRuleSet("a", "b", rule(100, 0, 5), rule(200, 10, 5)),
			in:    Range{2, 12},
			want:  []Range{{5, 9}, {102, 104}, {200, 202}},
		},
		{
			name:  "adjacent rules",
			rules: sampleStages()[0],
			in:    Range{40, 99},
			want:  []Range{{40, 49}, {50, 51}, {52, 99}},
		},
		{
			name:  "negative offset to zero",
			rules: NewRuleSet("a", "b", rule(0, 69, 1), rule(1, 0, 69)),
			in:    Range{60, 75},
			want:  []Range{{0, 0}, {61, 69}, {70, 75}},
		},
		{
			name:  "single point shifted",
			rules: sampleStages()[0],
			in:    Range{98, 98},
			want:  []Range{{50, 50}},
		},
		{
			name:  "single point unchanged",
			rules: sampleStages()[0],
			in:    Range{7, 7},
			want:  []Range{{7, 7}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.rules.Remap(tt.in))
		})
	}
}

func TestGaps(t *testing.T) {
	r := Range{0, 20}
	require.Equal(t, []Range{{0, 20}}, gaps(r, nil))
	require.Empty(t, gaps(r, []Range{{0, 20}}))
	require.Equal(t, []Range{{0, 1}, {10, 14}}, gaps(r, []Range{{2, 4}, {5, 9}, {15, 20}}))
	require.Equal(t, []Range{{0, 0}, {20, 20}}, gaps(r, []Range{{1, 19}}))
}

// TestRemapMatchesPointwise checks every small range against mapping each of
// its values one at a time.
func TestRemapMatchesPointwise(t *testing.T) {
	for _, rs := range sampleStages() {
		for lo := 0; lo <= 105; lo++ {
			for hi := lo; hi <= 105; hi++ {
				in := Range{lo, hi}
				out := rs.Remap(in)

				var want []int
				for x := lo; x <= hi; x++ {
					want = append(want, rs.Map(x))
				}
				slices.Sort(want)

				var got []int
				for i, r := range out {
					require.LessOrEqual(t, r.Lo, r.Hi, "%v: empty range in %v", in, out)
					if i > 0 {
						require.Less(t, out[i-1].Hi, r.Lo, "%v: %v not sorted and disjoint", in, out)
					}
					for x := r.Lo; x <= r.Hi; x++ {
						got = append(got, x)
					}
				}
				slices.Sort(got)
				require.Equal(t, want, got, "%v through %v", in, rs)
			}
		}
	}
}

func TestChain(t *testing.T) {
	stages := sampleStages()
	out := Chain([]Range{{79, 92}, {55, 67}}, stages...)
	got, ok := MinLo(out)
	require.True(t, ok)
	require.Equal(t, 46, got)

	total := 0
	for _, r := range out {
		total += r.Len()
	}
	require.Equal(t, 14+13, total)

	for _, seed := range []int{79, 14, 55, 13} {
		loc := seed
		for _, rs := range stages {
			loc = rs.Map(loc)
		}
		chained := Chain([]Range{{seed, seed}}, stages...)
		require.Equal(t, []Range{{loc, loc}}, chained)
	}
}

func TestMinLoEmpty(t *testing.T) {
	_, ok := MinLo(nil)
	require.False(t, ok)
}

func TestRangeIntersect(t *testing.T) {
	got, ok := Range{0, 10}.Intersect(Range{5, 20})
	require.True(t, ok)
	require.Equal(t, Range{5, 10}, got)
	_, ok = Range{0, 4}.Intersect(Range{5, 20})
	require.False(t, ok)
	require.Equal(t, 6, got.Len())
	require.True(t, got.Contains(10))
	require.False(t, got.Contains(11))
}
