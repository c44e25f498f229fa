package solutions

import (
	"slices"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

// calorieTotals returns the sum of each blank-line separated group.
func calorieTotals(input string) ([]int, error) {
	var totals []int
	line := 1
	for _, block := range aoc.Blocks(input) {
		sum := 0
		for _, l := range strings.Split(block, "\n") {
			n, err := aoc.Int(l)
			if err != nil {
				return nil, aoc.AtLine(line, err)
			}
			sum += n
			line++
		}
		totals = append(totals, sum)
		line++ // separator
	}
	return totals, nil
}

func (s *Solver) D1p1(input string) (string, error) {
	totals, err := calorieTotals(input)
	if err != nil {
		return "", err
	}
	if len(totals) == 0 {
		return "0", nil
	}
	return strconv.Itoa(slices.Max(totals)), nil
}

func (s *Solver) D1p2(input string) (string, error) {
	totals, err := calorieTotals(input)
	if err != nil {
		return "", err
	}
	top := aoc.TopN(totals, 3)
	s.log.Debug("top elves", zap.Ints("calories", top))
	return strconv.Itoa(aoc.Sum(top...)), nil
}
