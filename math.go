package aoc

import (
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0,
// larger root first when a > 0. ok is false if there are no real roots.
func SolveQuad[T Number](a, b, c T) (x1, x2 float64, ok bool) {
	d := float64(b*b - 4*a*c)
	if d < 0 {
		return 0, 0, false
	}
	d = math.Sqrt(d)
	a2 := float64(2 * a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2, true
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, or 1 if there are none.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
