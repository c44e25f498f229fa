package solutions

import (
	"strconv"

	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

func parseTrees(input string) (aoc.Grid[int], error) {
	return aoc.ParseGrid(input, func(_ aoc.Pt, r rune) (int, error) {
		return aoc.Digit(r)
	})
}

// visible reports whether every tree between p and some edge is shorter
// than the tree at p.
func visible(g aoc.Grid[int], p aoc.Pt) bool {
	h := g.At(p)
	for _, dir := range aoc.Directions {
		open := true
		g.Look(p, dir, func(_ aoc.Pt, v int) bool {
			if v >= h {
				open = false
			}
			return open
		})
		if open {
			return true
		}
	}
	return false
}

// scenicScore multiplies the viewing distance in each direction. A view
// stops at the edge or at the first tree at least as tall as p.
func scenicScore(g aoc.Grid[int], p aoc.Pt) int {
	h := g.At(p)
	score := 1
	for _, dir := range aoc.Directions {
		n := 0
		g.Look(p, dir, func(_ aoc.Pt, v int) bool {
			n++
			return v < h
		})
		score *= n
	}
	return score
}

func (s *Solver) D8p1(input string) (string, error) {
	g, err := parseTrees(input)
	if err != nil {
		return "", err
	}
	s.log.Debug("parsed forest", zap.Any("size", g.Size()), zap.Stringer("hash", g.Hash()))
	n := 0
	g.ForEach(func(p aoc.Pt, _ int) {
		if visible(g, p) {
			n++
		}
	})
	return strconv.Itoa(n), nil
}

func (s *Solver) D8p2(input string) (string, error) {
	g, err := parseTrees(input)
	if err != nil {
		return "", err
	}
	best := 0
	g.ForEach(func(p aoc.Pt, _ int) {
		best = max(best, scenicScore(g, p))
	})
	return strconv.Itoa(best), nil
}
