package aoc

import (
	"cmp"
	"fmt"
	"slices"
)

// Range is the closed interval [Lo, Hi]. All methods require Lo <= Hi.
type Range struct {
	Lo, Hi int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Lo, r.Hi)
}

// Len returns the number of integers in r.
func (r Range) Len() int {
	return r.Hi - r.Lo + 1
}

// Contains reports whether x is in r.
func (r Range) Contains(x int) bool {
	return r.Lo <= x && x <= r.Hi
}

// Intersect returns the overlap of r and o. ok is false if they don't
// overlap.
func (r Range) Intersect(o Range) (_ Range, ok bool) {
	lo, hi := max(r.Lo, o.Lo), min(r.Hi, o.Hi)
	if lo > hi {
		return Range{}, false
	}
	return Range{lo, hi}, true
}

// Shift returns r moved by d.
func (r Range) Shift(d int) Range {
	return Range{r.Lo + d, r.Hi + d}
}

// MappingRule maps [SourceStart, SourceStart+Length) onto
// [DestinationStart, DestinationStart+Length) point by point.
type MappingRule struct {
	SourceStart      int
	DestinationStart int
	Length           int
}

// Source returns the closed source interval of m.
func (m MappingRule) Source() Range {
	return Range{m.SourceStart, m.SourceStart + m.Length - 1}
}

// Offset returns the amount m shifts the values it maps.
func (m MappingRule) Offset() int {
	return m.DestinationStart - m.SourceStart
}

// RuleSet is one stage of mappings, from category From to category To.
// Rules are sorted by SourceStart and must not overlap in source space.
type RuleSet struct {
	From, To string
	Rules    []MappingRule
}

// NewRuleSet returns a RuleSet holding a sorted copy of rules.
func NewRuleSet(from, to string, rules ...MappingRule) RuleSet {
	rules = slices.Clone(rules)
	slices.SortFunc(rules, func(a, b MappingRule) int {
		return cmp.Compare(a.SourceStart, b.SourceStart)
	})
	return RuleSet{From: from, To: to, Rules: rules}
}

func (rs RuleSet) String() string {
	return fmt.Sprintf("%s-to-%s", rs.From, rs.To)
}

// Map returns x mapped through the rule covering it, or x itself if no rule
// does.
func (rs RuleSet) Map(x int) int {
	i, _ := slices.BinarySearchFunc(rs.Rules, x, func(m MappingRule, x int) int {
		return cmp.Compare(m.SourceStart, x)
	})
	// i is the first rule starting after x, unless one starts exactly at x.
	for _, j := range []int{i, i - 1} {
		if j >= 0 && j < len(rs.Rules) && rs.Rules[j].Source().Contains(x) {
			return x + rs.Rules[j].Offset()
		}
	}
	return x
}

// overlap is the part of an input range covered by one rule.
type overlap struct {
	src    Range // before shifting
	offset int
}

// overlaps returns the pieces of r covered by rules, in source order.
func (rs RuleSet) overlaps(r Range) []overlap {
	var out []overlap
	for _, m := range rs.Rules {
		if m.SourceStart > r.Hi {
			break
		}
		if src, ok := m.Source().Intersect(r); ok {
			out = append(out, overlap{src: src, offset: m.Offset()})
		}
	}
	return out
}

// gaps returns the pieces of r not covered by covered, which must be sorted,
// disjoint and within r.
func gaps(r Range, covered []Range) []Range {
	var out []Range
	next := r.Lo // lowest value not yet accounted for
	for _, c := range covered {
		if c.Lo > next {
			out = append(out, Range{next, c.Lo - 1})
		}
		next = c.Hi + 1
	}
	if next <= r.Hi {
		out = append(out, Range{next, r.Hi})
	}
	return out
}

// Remap returns the image of r under rs: the covered pieces of r shifted by
// their rule's offset, and the uncovered pieces unchanged. The result is
// sorted by Lo and never contains empty ranges.
func (rs RuleSet) Remap(r Range) []Range {
	ovs := rs.overlaps(r)
	if len(ovs) == 0 {
		return []Range{r}
	}
	covered := make([]Range, len(ovs))
	out := make([]Range, 0, 2*len(ovs)+1)
	for i, ov := range ovs {
		covered[i] = ov.src
		out = append(out, ov.src.Shift(ov.offset))
	}
	out = append(out, gaps(r, covered)...)
	slices.SortFunc(out, func(a, b Range) int {
		return cmp.Compare(a.Lo, b.Lo)
	})
	return out
}

// RemapAll remaps every range in in through rs.
func (rs RuleSet) RemapAll(in []Range) []Range {
	var out []Range
	for _, r := range in {
		out = append(out, rs.Remap(r)...)
	}
	return out
}

// Chain pushes in through each stage in order.
func Chain(in []Range, stages ...RuleSet) []Range {
	for _, rs := range stages {
		in = rs.RemapAll(in)
	}
	return in
}

// MinLo returns the smallest lower bound in rs. ok is false if rs is empty.
func MinLo(rs []Range) (_ int, ok bool) {
	if len(rs) == 0 {
		return 0, false
	}
	m := rs[0].Lo
	for _, r := range rs[1:] {
		m = min(m, r.Lo)
	}
	return m, true
}
