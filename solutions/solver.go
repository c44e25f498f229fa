// Package solutions implements the Advent of Code 2022 puzzles, days 1
// through 14. Each part is a method D{day}p{part} on Solver taking the
// puzzle input and returning the answer.
package solutions

import (
	"go.uber.org/zap"

	aoc "github.com/maisem/aoc2022"
)

// Solver holds the puzzle parts. It carries no state between calls.
type Solver struct {
	log *zap.Logger
}

// New returns a Solver that writes debug output to log.
func New(log *zap.Logger) *Solver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Solver{log: log}
}

// Registry returns the registry of every part defined on s.
func (s *Solver) Registry() *aoc.Registry {
	return aoc.MustGet(aoc.Register(s))
}
