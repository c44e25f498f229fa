package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) In(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid parses a rectangular block of text, one cell per rune.
func ParseGrid[T any](input string, cell func(p Pt, r rune) (T, error)) (Grid[T], error) {
	lines, err := Lines(input)
	if err != nil {
		return nil, err
	}
	width := len([]rune(lines[0]))
	g := make(Grid[T], len(lines))
	for y, line := range lines {
		rs := []rune(line)
		if len(rs) != width {
			return nil, AtLine(y+1, Parsef("row has width %d, want %d", len(rs), width))
		}
		g[y] = make([]T, width)
		for x, r := range rs {
			v, err := cell(Pt{x, y}, r)
			if err != nil {
				return nil, AtLine(y+1, err)
			}
			g[y][x] = v
		}
	}
	return g, nil
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

func (g Grid[T]) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			sb.WriteString(toString(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func toString(v any) string {
	switch v := v.(type) {
	case byte:
		return string(v)
	case rune:
		return string(v)
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	}
	return "?"
}

// Hash returns a hash of the grid's contents.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move advances p one step in its direction. It reports false when the
// step leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.In(p.Pt) {
		return Path{}, false
	}
	return p, true
}

// Look walks from p in direction dir, calling f with each cell until it
// returns false or the edge is reached.
func (g Grid[T]) Look(p Pt, dir Direction, f func(Pt, T) (keepGoing bool)) {
	for path, ok := g.Move(Path{p, dir}); ok; path, ok = g.Move(path) {
		if !f(path.Pt, g.At(path.Pt)) {
			return
		}
	}
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four cardinal directions.
var Directions = []Direction{Up, Right, Down, Left}

// Delta returns the unit step for d. Y grows downwards.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

// ParseDirection parses one of U, R, D, L.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "U":
		return Up, nil
	case "R":
		return Right, nil
	case "D":
		return Down, nil
	case "L":
		return Left, nil
	}
	return 0, Parsef("unknown direction %q", s)
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// Walk calls f for each point from A to B inclusive, stepping with
// Toward.
func (s Segment) Walk(f func(Pt)) {
	p := s.A
	for {
		f(p)
		if p == s.B {
			return
		}
		p = p.Toward(s.B)
	}
}

// Straight reports whether s is horizontal or vertical.
func (s Segment) Straight() bool {
	return s.A.X == s.B.X || s.A.Y == s.B.Y
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(o Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + o.X, p.Y + o.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// CDist returns the chebyshev distance between a and b.
func (a Pt2[T]) CDist(b Pt2[T]) T {
	return max(AbsDiff[T](a.X, b.X), AbsDiff[T](a.Y, b.Y))
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + Sign(b.X-p.X), p.Y + Sign(b.Y-p.Y)}
}

// Follow returns where p ends up when it trails leader: unchanged while
// touching (including diagonally), otherwise one step toward it.
func (p Pt2[T]) Follow(leader Pt2[T]) Pt2[T] {
	if p.CDist(leader) <= 1 {
		return p
	}
	return p.Toward(leader)
}
