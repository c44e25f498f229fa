package solutions

import (
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

const (
	crtWidth  = 40
	crtHeight = 6
)

type instr struct {
	op string // "noop" or "addx"
	v  int
}

func (in instr) cycles() int {
	if in.op == "addx" {
		return 2
	}
	return 1
}

func parseProgram(input string) ([]instr, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	prog := make([]instr, 0, len(lines))
	for i, line := range lines {
		switch {
		case line == "noop":
			prog = append(prog, instr{op: "noop"})
		case strings.HasPrefix(line, "addx "):
			f, err := aoc.Fields(line, 2)
			if err != nil {
				return nil, aoc.AtLine(i+1, err)
			}
			v, err := aoc.Int(f[1])
			if err != nil {
				return nil, aoc.AtLine(i+1, err)
			}
			prog = append(prog, instr{op: "addx", v: v})
		default:
			return nil, aoc.AtLine(i+1, aoc.Parsef("unknown instruction %q", line))
		}
	}
	return prog, nil
}

// device is the handheld's CPU wired to its CRT.
type device struct {
	cycle  int
	x      int
	signal int // sum of cycle*x at the sampled cycles
	screen aoc.Grid[byte]
}

func newDevice() *device {
	d := &device{
		cycle:  1,
		x:      1,
		screen: aoc.MakeGrid[byte](crtWidth, crtHeight),
	}
	d.screen.ForEach(func(p aoc.Pt, _ byte) { d.screen.Set(p, '.') })
	return d
}

// tick performs the work done during the current cycle, then advances.
func (d *device) tick() {
	p := aoc.Pt{X: (d.cycle - 1) % crtWidth, Y: (d.cycle - 1) / crtWidth}
	if d.screen.In(p) && aoc.AbsDiff(p.X, d.x) <= 1 {
		d.screen.Set(p, '#')
	}
	if d.cycle >= 20 && (d.cycle-20)%40 == 0 && d.cycle <= 220 {
		d.signal += d.cycle * d.x
	}
	d.cycle++
}

// run executes prog, stopping once more than limit cycles have completed.
// A limit of 0 runs the whole program.
func (d *device) run(prog []instr, limit int) {
	for _, in := range prog {
		if limit > 0 && d.cycle > limit {
			return
		}
		for i := 0; i < in.cycles(); i++ {
			d.tick()
		}
		d.x += in.v
	}
}

func (s *Solver) D10p1(input string) (string, error) {
	prog, err := parseProgram(input)
	if err != nil {
		return "", err
	}
	d := newDevice()
	d.run(prog, 220)
	return strconv.Itoa(d.signal), nil
}

func (s *Solver) D10p2(input string) (string, error) {
	prog, err := parseProgram(input)
	if err != nil {
		return "", err
	}
	d := newDevice()
	d.run(prog, 0)
	return d.screen.String(), nil
}
