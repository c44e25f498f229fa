package solutions

import (
	"math"
	"strconv"

	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

type heightMap struct {
	grid       aoc.Grid[int]
	start, end aoc.Pt
}

func parseHeightMap(input string) (*heightMap, error) {
	hm := &heightMap{}
	var starts, ends int
	g, err := aoc.ParseGrid(input, func(p aoc.Pt, r rune) (int, error) {
		switch {
		case r == 'S':
			hm.start = p
			starts++
			return 0, nil
		case r == 'E':
			hm.end = p
			ends++
			return 25, nil
		case r >= 'a' && r <= 'z':
			return int(r - 'a'), nil
		}
		return 0, aoc.Parsef("bad elevation %q", r)
	})
	if err != nil {
		return nil, err
	}
	if starts != 1 || ends != 1 {
		return nil, aoc.Parsef("want one S and one E, got %d and %d", starts, ends)
	}
	hm.grid = g
	return hm, nil
}

// distancesToEnd returns the length of the shortest climb from every cell
// that can reach the end. A step may rise at most one unit, so searching
// backwards from the end follows edges that drop at most one unit.
func (hm *heightMap) distancesToEnd() map[aoc.Pt]int {
	g := hm.grid.ToGraph(func(from, to int) bool {
		return to <= from+1
	})
	return g.Reverse().Distances(hm.end)
}

func (s *Solver) D12p1(input string) (string, error) {
	hm, err := parseHeightMap(input)
	if err != nil {
		return "", err
	}
	d, ok := hm.distancesToEnd()[hm.start]
	if !ok {
		d = math.MaxInt
	}
	return strconv.Itoa(d), nil
}

func (s *Solver) D12p2(input string) (string, error) {
	hm, err := parseHeightMap(input)
	if err != nil {
		return "", err
	}
	dist := hm.distancesToEnd()
	best := math.MaxInt
	hm.grid.ForEach(func(p aoc.Pt, h int) {
		if d, ok := dist[p]; ok && h == 0 {
			best = min(best, d)
		}
	})
	s.log.Debug("hiking trail", zap.Int("reachable", len(dist)))
	return strconv.Itoa(best), nil
}
