package solutions

import (
	"strconv"

	aoc "github.com/maisem/aoc2022"
)

type shape int

const (
	rock shape = iota
	paper
	scissors
)

// beats returns the shape that s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

// losesTo returns the shape that defeats s.
func (s shape) losesTo() shape { return (s + 1) % 3 }

type outcome int

const (
	loss outcome = iota
	draw
	win
)

func (o outcome) score() int { return int(o) * 3 }

func play(opp, me shape) outcome {
	switch {
	case me == opp:
		return draw
	case me.beats() == opp:
		return win
	}
	return loss
}

// roundScore is the player's score for one round.
func roundScore(opp, me shape) int {
	return int(me) + 1 + play(opp, me).score()
}

func parseRound(line string) (opp, col byte, err error) {
	f, err := aoc.Fields(line, 2)
	if err != nil {
		return 0, 0, err
	}
	if len(f[0]) != 1 || f[0][0] < 'A' || f[0][0] > 'C' {
		return 0, 0, aoc.Parsef("bad opponent move %q", f[0])
	}
	if len(f[1]) != 1 || f[1][0] < 'X' || f[1][0] > 'Z' {
		return 0, 0, aoc.Parsef("bad second column %q", f[1])
	}
	return f[0][0] - 'A', f[1][0] - 'X', nil
}

// rpsTotal sums pick(opp, col) over every round of the strategy guide.
func rpsTotal(input string, pick func(opp shape, col byte) shape) (string, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return "", err
	}
	total := 0
	for i, line := range lines {
		opp, col, err := parseRound(line)
		if err != nil {
			return "", aoc.AtLine(i+1, err)
		}
		o := shape(opp)
		total += roundScore(o, pick(o, col))
	}
	return strconv.Itoa(total), nil
}

func (s *Solver) D2p1(input string) (string, error) {
	return rpsTotal(input, func(_ shape, col byte) shape {
		return shape(col)
	})
}

func (s *Solver) D2p2(input string) (string, error) {
	return rpsTotal(input, func(opp shape, col byte) shape {
		switch outcome(col) {
		case loss:
			return opp.beats()
		case win:
			return opp.losesTo()
		}
		return opp
	})
}
