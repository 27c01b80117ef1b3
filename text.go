package aoc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Lines splits s into lines, dropping a trailing newline and any carriage
// returns.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Sections splits s into blank-line separated groups of lines.
func Sections(s string) [][]string {
	var out [][]string
	var cur []string
	for _, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Fields parses the whitespace separated decimal integers in s.
func Fields(s string) ([]int, error) {
	fs := strings.Fields(s)
	out := make([]int, 0, len(fs))
	for _, f := range fs {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "bad number %q", f)
		}
		out = append(out, n)
	}
	return out, nil
}
