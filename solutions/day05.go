package solutions

import (
	"strings"

	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

type crateStacks []aoc.Stack[byte]

type moveCmd struct {
	count, from, to int // stack numbers are 1-based
}

func parseCrates(input string) (crateStacks, []moveCmd, error) {
	drawing, moves, err := aoc.Cut(strings.TrimSuffix(input, "\n"), "\n\n")
	if err != nil {
		return nil, nil, err
	}
	stacks, err := parseDrawing(drawing)
	if err != nil {
		return nil, nil, err
	}
	lines, err := aoc.Lines(moves)
	if err != nil {
		return nil, nil, err
	}
	offset := strings.Count(drawing, "\n") + 3
	cmds := make([]moveCmd, 0, len(lines))
	for i, line := range lines {
		c, err := parseMove(line, len(stacks))
		if err != nil {
			return nil, nil, aoc.AtLine(offset+i, err)
		}
		cmds = append(cmds, c)
	}
	return stacks, cmds, nil
}

// parseDrawing rebuilds the stacks from the ASCII drawing. The last line
// numbers the stacks and fixes the column each one is drawn in.
func parseDrawing(drawing string) (crateStacks, error) {
	rows := strings.Split(drawing, "\n")
	index := rows[len(rows)-1]
	var cols []int
	for i := 0; i < len(index); i++ {
		if index[i] == ' ' {
			continue
		}
		start := i
		for i < len(index) && index[i] != ' ' {
			i++
		}
		n, err := aoc.Int(index[start:i])
		if err != nil {
			return nil, aoc.AtLine(len(rows), err)
		}
		if n != len(cols)+1 {
			return nil, aoc.AtLine(len(rows), aoc.Parsef("stack %d out of order", n))
		}
		cols = append(cols, start)
	}
	if len(cols) == 0 {
		return nil, aoc.AtLine(len(rows), aoc.Parsef("no stacks numbered"))
	}

	stacks := make(crateStacks, len(cols))
	for y := len(rows) - 2; y >= 0; y-- {
		row := rows[y]
		for i, x := range cols {
			if x >= len(row) || row[x] == ' ' {
				continue
			}
			if x == 0 || x+1 >= len(row) || row[x-1] != '[' || row[x+1] != ']' {
				return nil, aoc.AtLine(y+1, aoc.Parsef("malformed crate at column %d", x+1))
			}
			stacks[i].Push(row[x])
		}
	}
	return stacks, nil
}

func parseMove(line string, numStacks int) (moveCmd, error) {
	f, err := aoc.Fields(line, 6)
	if err != nil {
		return moveCmd{}, err
	}
	if f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return moveCmd{}, aoc.Parsef("unrecognized command %q", line)
	}
	ns, err := aoc.Ints(f[1], f[3], f[5])
	if err != nil {
		return moveCmd{}, err
	}
	c := moveCmd{count: ns[0], from: ns[1], to: ns[2]}
	if c.count < 0 {
		return moveCmd{}, aoc.Parsef("negative crate count in %q", line)
	}
	for _, n := range []int{c.from, c.to} {
		if n < 1 || n > numStacks {
			return moveCmd{}, aoc.Logicf("no stack %d", n)
		}
	}
	return c, nil
}

// String renders each stack bottom to top, separated by spaces.
func (cs crateStacks) String() string {
	parts := make([]string, len(cs))
	for i := range cs {
		parts[i] = string(cs[i].Items())
	}
	return strings.Join(parts, " ")
}

// tops returns the top crate of each non-empty stack.
func (cs crateStacks) tops() string {
	var sb strings.Builder
	for i := range cs {
		if c, ok := cs[i].Peek(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// rearrange runs the moves. With together unset crates move one at a
// time, which reverses a multi-crate move; otherwise they keep their order.
func rearrange(input string, together bool, log *zap.Logger) (string, error) {
	stacks, cmds, err := parseCrates(input)
	if err != nil {
		return "", err
	}
	log.Debug("parsed crates", zap.Int("stacks", len(stacks)), zap.Int("moves", len(cmds)))
	for _, c := range cmds {
		from, to := &stacks[c.from-1], &stacks[c.to-1]
		if together {
			to.Push(from.PopN(c.count)...)
			continue
		}
		for i := 0; i < c.count; i++ {
			v, ok := from.Pop()
			if !ok {
				continue
			}
			to.Push(v)
		}
	}
	log.Debug("rearranged", zap.Bool("together", together), zap.Stringer("stacks", stacks))
	return stacks.tops(), nil
}

func (s *Solver) D5p1(input string) (string, error) {
	return rearrange(input, false, s.log)
}

func (s *Solver) D5p2(input string) (string, error) {
	return rearrange(input, true, s.log)
}
