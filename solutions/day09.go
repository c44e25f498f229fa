package solutions

import (
	"strconv"

	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

type ropeMove struct {
	dir   aoc.Direction
	steps int
}

func parseRopeMoves(input string) ([]ropeMove, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	moves := make([]ropeMove, 0, len(lines))
	for i, line := range lines {
		f, err := aoc.Fields(line, 2)
		if err != nil {
			return nil, aoc.AtLine(i+1, err)
		}
		dir, err := aoc.ParseDirection(f[0])
		if err != nil {
			return nil, aoc.AtLine(i+1, err)
		}
		n, err := aoc.Int(f[1])
		if err != nil {
			return nil, aoc.AtLine(i+1, err)
		}
		if n < 0 {
			return nil, aoc.AtLine(i+1, aoc.Parsef("negative step count %d", n))
		}
		moves = append(moves, ropeMove{dir, n})
	}
	return moves, nil
}

// rope is a chain of knots; knots[0] is the head.
type rope struct {
	knots   []aoc.Pt
	visited aoc.Set[aoc.Pt] // every position the tail has occupied
}

func newRope(knots int) *rope {
	r := &rope{
		knots:   make([]aoc.Pt, knots),
		visited: aoc.Set[aoc.Pt]{},
	}
	r.visited.Add(aoc.Pt{})
	return r
}

// step moves the head one unit and lets every other knot follow.
func (r *rope) step(dir aoc.Direction) {
	r.knots[0] = r.knots[0].Add(dir.Delta())
	for i := 1; i < len(r.knots); i++ {
		r.knots[i] = r.knots[i].Follow(r.knots[i-1])
	}
	r.visited.Add(r.knots[len(r.knots)-1])
}

func simulateRope(input string, knots int, log *zap.Logger) (string, error) {
	moves, err := parseRopeMoves(input)
	if err != nil {
		return "", err
	}
	r := newRope(knots)
	for _, m := range moves {
		for i := 0; i < m.steps; i++ {
			r.step(m.dir)
		}
	}
	log.Debug("rope done", zap.Int("knots", knots), zap.Any("tail", r.knots[knots-1]))
	return strconv.Itoa(r.visited.Len()), nil
}

func (s *Solver) D9p1(input string) (string, error) {
	return simulateRope(input, 2, s.log)
}

func (s *Solver) D9p2(input string) (string, error) {
	return simulateRope(input, 10, s.log)
}
