package solutions

import (
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

var sandSource = aoc.Pt{X: 500, Y: 0}

// cave is a vertical slice of rock with sand pouring in from sandSource.
type cave struct {
	rock  aoc.Set[aoc.Pt]
	sand  aoc.Set[aoc.Pt]
	maxY  int  // lowest rock
	floor bool // solid floor at maxY+2
}

func parseCave(input string) (*cave, error) {
	lines, err := aoc.Lines(input)
	if err != nil {
		return nil, err
	}
	c := &cave{rock: aoc.Set[aoc.Pt]{}, sand: aoc.Set[aoc.Pt]{}}
	for i, line := range lines {
		var pts []aoc.Pt
		for _, v := range strings.Split(line, " -> ") {
			x, y, err := aoc.Cut(v, ",")
			if err != nil {
				return nil, aoc.AtLine(i+1, err)
			}
			ns, err := aoc.Ints(x, y)
			if err != nil {
				return nil, aoc.AtLine(i+1, err)
			}
			if ns[0] < 0 || ns[1] < 0 {
				return nil, aoc.AtLine(i+1, aoc.Parsef("negative coordinate %q", v))
			}
			pts = append(pts, aoc.Pt{X: ns[0], Y: ns[1]})
		}
		c.rock.Add(pts[0])
		for j := 1; j < len(pts); j++ {
			seg := aoc.Segment{A: pts[j-1], B: pts[j]}
			if !seg.Straight() {
				return nil, aoc.AtLine(i+1, aoc.Parsef("segment %v -> %v is not axis-aligned", seg.A, seg.B))
			}
			seg.Walk(c.rock.Add)
		}
	}
	for p := range c.rock {
		c.maxY = max(c.maxY, p.Y)
	}
	return c, nil
}

func (c *cave) blocked(p aoc.Pt) bool {
	if c.floor && p.Y >= c.maxY+2 {
		return true
	}
	return c.rock.Has(p) || c.sand.Has(p)
}

// drop lets one grain fall from the source. It returns where the grain
// came to rest, or false if it fell past the lowest rock.
func (c *cave) drop() (aoc.Pt, bool) {
	p := sandSource
	for {
		if !c.floor && p.Y > c.maxY {
			return aoc.Pt{}, false
		}
		moved := false
		for _, dx := range []int{0, -1, 1} {
			next := aoc.Pt{X: p.X + dx, Y: p.Y + 1}
			if !c.blocked(next) {
				p = next
				moved = true
				break
			}
		}
		if !moved {
			c.sand.Add(p)
			return p, true
		}
	}
}

// pour drops grains until one escapes or the source is covered, and
// returns the number of grains at rest.
func (c *cave) pour() int {
	if c.blocked(sandSource) {
		return 0
	}
	for {
		p, ok := c.drop()
		if !ok || p == sandSource {
			return c.sand.Len()
		}
	}
}

func pourSand(input string, floor bool, log *zap.Logger) (string, error) {
	c, err := parseCave(input)
	if err != nil {
		return "", err
	}
	c.floor = floor
	n := c.pour()
	log.Debug("sand settled", zap.Bool("floor", floor), zap.Int("rock", c.rock.Len()), zap.Int("sand", n))
	return strconv.Itoa(n), nil
}

func (s *Solver) D14p1(input string) (string, error) {
	return pourSand(input, false, s.log)
}

func (s *Solver) D14p2(input string) (string, error) {
	return pourSand(input, true, s.log)
}
