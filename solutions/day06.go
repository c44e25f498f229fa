package solutions

import (
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

// markerEnd returns the number of characters read up to and including the
// first run of w distinct characters, or 0 if there is none.
func markerEnd(signal string, w int) int {
	var counts [256]int
	dups := 0 // distinct bytes seen more than once in the window
	for i := 0; i < len(signal); i++ {
		c := signal[i]
		counts[c]++
		if counts[c] == 2 {
			dups++
		}
		if i >= w {
			old := signal[i-w]
			counts[old]--
			if counts[old] == 1 {
				dups--
			}
		}
		if i >= w-1 && dups == 0 {
			return i + 1
		}
	}
	return 0
}

func findMarker(input string, w int) (string, error) {
	signal := strings.TrimSuffix(input, "\n")
	if strings.ContainsAny(signal, "\n\r ") {
		return "", aoc.Parsef("datastream must be a single line")
	}
	return strconv.Itoa(markerEnd(signal, w)), nil
}

func (s *Solver) D6p1(input string) (string, error) {
	return findMarker(input, 4)
}

func (s *Solver) D6p2(input string) (string, error) {
	return findMarker(input, 14)
}
