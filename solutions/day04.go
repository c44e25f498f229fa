package solutions

import (
	"strconv"

	aoc "github.com/maisem/aoc2022"
)

// interval is an inclusive range of section IDs.
type interval struct {
	lo, hi int
}

func (a interval) contains(b interval) bool {
	return a.lo <= b.lo && b.hi <= a.hi
}

func (a interval) overlaps(b interval) bool {
	return a.lo <= b.hi && b.lo <= a.hi
}

func parseInterval(s string) (interval, error) {
	lo, hi, err := aoc.Cut(s, "-")
	if err != nil {
		return interval{}, err
	}
	ns, err := aoc.Ints(lo, hi)
	if err != nil {
		return interval{}, err
	}
	if ns[0] > ns[1] {
		return interval{}, aoc.Parsef("interval %q has lower bound above upper", s)
	}
	return interval{ns[0], ns[1]}, nil
}

// countPairs counts the assignment pairs for which match is true.
func countPairs(input string, match func(a, b interval) bool) (string, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return "", err
	}
	n := 0
	for i, line := range lines {
		l, r, err := aoc.Cut(line, ",")
		if err != nil {
			return "", aoc.AtLine(i+1, err)
		}
		a, err := parseInterval(l)
		if err != nil {
			return "", aoc.AtLine(i+1, err)
		}
		b, err := parseInterval(r)
		if err != nil {
			return "", aoc.AtLine(i+1, err)
		}
		if match(a, b) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

func (s *Solver) D4p1(input string) (string, error) {
	return countPairs(input, func(a, b interval) bool {
		return a.contains(b) || b.contains(a)
	})
}

func (s *Solver) D4p2(input string) (string, error) {
	return countPairs(input, interval.overlaps)
}
