package main

import (
	"strings"

	"github.com/almanac-dev/aoc"
	"github.com/pkg/errors"
)

var digitWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit that s starts with. If words is set, spelled out
// digits count too.
func digitAt(s string, words bool) (int, bool) {
	if c := s[0]; c >= '0' && c <= '9' {
		return aoc.Digit(rune(c)), true
	}
	if words {
		for i, w := range digitWords {
			if strings.HasPrefix(s, w) {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// calibrationValue returns the two digit number made of the first and last
// digit in line. Spelled out digits may overlap ("eightwo" is 8 then 2).
func calibrationValue(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line[i:], words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, errors.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}

func (s solver) sumCalibration(words bool) int {
	sum := 0
	s.ForLines(func(line string) {
		sum += aoc.MustGet(calibrationValue(line, words))
	})
	return sum
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return s.sumCalibration(false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return s.sumCalibration(true)
}
