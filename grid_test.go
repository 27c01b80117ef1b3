package aoc

import (
	"reflect"
	"testing"
)

func TestByteGrid(t *testing.T) {
	g, err := ByteGrid([]string{"ab", "cd"})
	if err != nil {
		t.Fatal(err)
	}
	for p, want := range map[Pt]byte{{0, 0}: 'a', {1, 0}: 'b', {0, 1}: 'c', {1, 1}: 'd'} {
		if got, ok := g.AtOk(p); !ok || got != want {
			t.Errorf("AtOk(%v) = %q, %v; want %q", p, got, ok, want)
		}
	}
	for _, p := range []Pt{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, ok := g.AtOk(p); ok {
			t.Errorf("AtOk(%v) is inside the grid", p)
		}
	}
	if _, err := ByteGrid([]string{"abc", "d"}); err == nil {
		t.Error("ByteGrid accepted ragged lines")
	}
}

func TestForNeighbors(t *testing.T) {
	var got []Pt
	Pt{1, 1}.ForNeighbors(func(p Pt) bool {
		got = append(got, p)
		return true
	})
	want := []Pt{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForNeighbors = %v, want %v", got, want)
	}

	n := 0
	Pt{}.ForNeighbors(func(Pt) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("ForNeighbors kept going after false: %d calls", n)
	}
}
