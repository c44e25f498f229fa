package solutions

import (
	"strconv"

	aoc "github.com/maisem/aoc2022"
)

// priority maps a-z to 1..26 and A-Z to 27..52.
func priority(c rune) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	}
	return 0, aoc.Parsef("no priority for %q", c)
}

func itemSet(s string) (aoc.Set[rune], error) {
	set := aoc.Set[rune]{}
	for _, c := range s {
		if _, err := priority(c); err != nil {
			return nil, err
		}
		set.Add(c)
	}
	return set, nil
}

// sharedPriority returns the priority of the single item common to all
// of sacks, or 0 if there is none.
func sharedPriority(sacks ...string) (int, error) {
	var common aoc.Set[rune]
	for i, s := range sacks {
		set, err := itemSet(s)
		if err != nil {
			return 0, err
		}
		if i == 0 {
			common = set
		} else {
			common = common.Intersect(set)
		}
	}
	switch common.Len() {
	case 0:
		return 0, nil
	case 1:
		return priority(common.Values()[0])
	}
	return 0, aoc.Logicf("%d items in common, want 1", common.Len())
}

func (s *Solver) D3p1(input string) (string, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for i, line := range lines {
		if len(line)%2 != 0 {
			return "", aoc.AtLine(i+1, aoc.Logicf("rucksack %q has odd length", line))
		}
		p, err := sharedPriority(line[:len(line)/2], line[len(line)/2:])
		if err != nil {
			return "", aoc.AtLine(i+1, err)
		}
		sum += p
	}
	return strconv.Itoa(sum), nil
}

func (s *Solver) D3p2(input string) (string, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return "", err
	}
	if len(lines)%3 != 0 {
		return "", aoc.Logicf("%d rucksacks do not split into groups of three", len(lines))
	}
	sum := 0
	for i := 0; i < len(lines); i += 3 {
		p, err := sharedPriority(lines[i : i+3]...)
		if err != nil {
			return "", aoc.AtLine(i+1, err)
		}
		sum += p
	}
	return strconv.Itoa(sum), nil
}
