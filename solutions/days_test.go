package solutions

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	aoc "github.com/maisem/aoc2022"
)

func sampleInput(t *testing.T, day int) string {
	t.Helper()
	s, err := aoc.LookupSample(day, 1)
	require.NoError(t, err)
	return s.Input
}

func TestParseDrawing(t *testing.T) {
	stacks, cmds, err := parseCrates(sampleInput(t, 5))
	require.NoError(t, err)

	got := make([]string, len(stacks))
	for i := range stacks {
		got[i] = string(stacks[i].Items())
	}
	if diff := cmp.Diff([]string{"ZN", "MCD", "P"}, got); diff != "" {
		t.Errorf("stacks mismatch (-want +got):\n%s", diff)
	}
	wantCmds := []moveCmd{{1, 2, 1}, {3, 1, 3}, {2, 2, 1}, {1, 1, 2}}
	if diff := cmp.Diff(wantCmds, cmds, cmp.AllowUnexported(moveCmd{})); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestCrateMoveOrder(t *testing.T) {
	const in = "[A]\n[B]\n[C]    \n 1   2 \n\nmove 2 from 1 to 2\n"
	s := New(nil)

	got, err := s.D5p1(in)
	require.NoError(t, err)
	assert.Equal(t, "CB", got)

	got, err = s.D5p2(in)
	require.NoError(t, err)
	assert.Equal(t, "CA", got)
}

func TestCrateEmptyStackSkipped(t *testing.T) {
	got, err := New(nil).D5p1("[A]    \n 1   2 \n\nmove 1 from 1 to 2\n")
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestDirectorySizes(t *testing.T) {
	tree, err := parseTranscript(sampleInput(t, 7))
	require.NoError(t, err)
	sizes := map[string]int{}
	var walk func(id dirID, path string)
	walk = func(id dirID, path string) {
		sizes[path] = tree.dirs[id].size
		for name, c := range tree.dirs[id].dirs {
			walk(c, path+name+"/")
		}
	}
	walk(0, "/")
	want := map[string]int{
		"/":     48381165,
		"/a/":   94853,
		"/a/e/": 584,
		"/d/":   24933642,
	}
	if diff := cmp.Diff(want, sizes); diff != "" {
		t.Errorf("sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestCDUpAtRoot(t *testing.T) {
	tree, err := parseTranscript("$ cd /\n$ cd ..\n$ ls\ndir a\n")
	require.NoError(t, err)
	assert.Len(t, tree.dirs[0].dirs, 1)
}

func TestTreeGridHash(t *testing.T) {
	in := sampleInput(t, 8)
	a, err := parseTrees(in)
	require.NoError(t, err)
	b, err := parseTrees(in)
	require.NoError(t, err)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, aoc.Pt{X: 5, Y: 5}, a.Size())
	assert.True(t, visible(a, aoc.Pt{X: 1, Y: 1}))
	assert.False(t, visible(a, aoc.Pt{X: 3, Y: 1}))
	assert.Equal(t, 8, scenicScore(a, aoc.Pt{X: 2, Y: 3}))
}

func TestRopeTailStartsAtOrigin(t *testing.T) {
	moves, err := parseRopeMoves(sampleInput(t, 9))
	require.NoError(t, err)
	for _, knots := range []int{2, 10} {
		r := newRope(knots)
		for _, m := range moves {
			for i := 0; i < m.steps; i++ {
				r.step(m.dir)
				for k := 1; k < knots; k++ {
					require.LessOrEqual(t, r.knots[k].CDist(r.knots[k-1]), 1, "knot %d detached", k)
				}
			}
		}
		assert.True(t, r.visited.Has(aoc.Pt{}), "%d knots: origin not visited", knots)
	}
}

func TestDeviceRegister(t *testing.T) {
	prog, err := parseProgram("noop\naddx 3\naddx -5\n")
	require.NoError(t, err)
	d := newDevice()
	d.run(prog, 0)
	assert.Equal(t, 6, d.cycle)
	assert.Equal(t, -1, d.x)
}

func TestCRTFrame(t *testing.T) {
	got, err := New(nil).D10p2(sampleInput(t, 10))
	require.NoError(t, err)
	rows := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, rows, crtHeight)
	for _, r := range rows {
		assert.Len(t, r, crtWidth)
	}
	assert.Equal(t, "##..##..##..##..##..##..##..##..##..##..", rows[0])
}

func TestParseMonkeys(t *testing.T) {
	ms, err := parseMonkeys(sampleInput(t, 11))
	require.NoError(t, err)

	type parsed struct {
		Items           []uint64
		Op              worryOp
		Divisor         uint64
		IfTrue, IfFalse int
	}
	var got []parsed
	for _, m := range ms {
		got = append(got, parsed{m.items.Drain(), m.op, m.divisor, m.ifTrue, m.ifFalse})
	}
	want := []parsed{
		{[]uint64{79, 98}, worryOp{mul: true, operand: 19}, 23, 2, 3},
		{[]uint64{54, 65, 75, 74}, worryOp{operand: 6}, 19, 2, 0},
		{[]uint64{79, 60, 97}, worryOp{mul: true, old: true}, 13, 1, 3},
		{[]uint64{74}, worryOp{operand: 3}, 17, 0, 1},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(worryOp{})); diff != "" {
		t.Errorf("monkeys mismatch (-want +got):\n%s", diff)
	}
}

func TestMonkeyBusinessWithoutRelief(t *testing.T) {
	in := sampleInput(t, 11)
	tests := []struct {
		rounds int
		want   string
	}{
		{1, "24"},          // 4 * 6
		{20, "10197"},      // 99 * 103
		{1000, "27019168"}, // 5204 * 5192
	}
	ms, err := parseMonkeys(in)
	require.NoError(t, err)
	var divisors []uint64
	for _, m := range ms {
		divisors = append(divisors, m.divisor)
	}
	assert.Equal(t, uint64(96577), aoc.LCM(divisors...))

	for _, tt := range tests {
		got, err := monkeyBusiness(in, tt.rounds, false, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "after %d rounds", tt.rounds)
	}
}

func TestMonkeyTargets(t *testing.T) {
	const tmpl = "Monkey 0:\n  Starting items: 1\n  Operation: new = old + 1\n  Test: divisible by 2\n    If true: throw to monkey %s\n    If false: throw to monkey 1\n\n" +
		"Monkey 1:\n  Starting items: 2\n  Operation: new = old * 2\n  Test: divisible by 3\n    If true: throw to monkey 0\n    If false: throw to monkey 0\n"
	for _, target := range []string{"0", "2", "-1"} {
		_, err := parseMonkeys(strings.Replace(tmpl, "%s", target, 1))
		assert.Equal(t, aoc.Logic, aoc.KindOf(err), "target %s: err = %v", target, err)
	}
	_, err := parseMonkeys(strings.Replace(tmpl, "%s", "1", 1))
	assert.NoError(t, err)
}

func TestMonkeyOverflow(t *testing.T) {
	const in = "Monkey 0:\n  Starting items: 4294967296\n  Operation: new = old * old\n  Test: divisible by 2\n    If true: throw to monkey 1\n    If false: throw to monkey 1\n\n" +
		"Monkey 1:\n  Starting items:\n  Operation: new = old + 1\n  Test: divisible by 3\n    If true: throw to monkey 0\n    If false: throw to monkey 0\n"
	_, err := New(nil).D11p1(in)
	assert.Equal(t, aoc.Logic, aoc.KindOf(err), "err = %v", err)
}

func TestPacketOrdering(t *testing.T) {
	pairs, err := parsePairs(sampleInput(t, 13))
	require.NoError(t, err)
	var packets []packet
	for _, pair := range pairs {
		packets = append(packets, pair[0], pair[1])
	}
	packets = append(packets,
		aoc.MustGet(parsePacket("[[2]]")),
		aoc.MustGet(parsePacket("[[6]]")),
		aoc.MustGet(parsePacket("[2]")),
		aoc.MustGet(parsePacket("2")))

	for _, a := range packets {
		assert.Zero(t, comparePackets(a, a), "%v vs itself", a)
		for _, b := range packets {
			ab := comparePackets(a, b)
			assert.Equal(t, -ab, comparePackets(b, a), "%v vs %v", a, b)
			for _, c := range packets {
				if ab <= 0 && comparePackets(b, c) <= 0 {
					assert.LessOrEqual(t, comparePackets(a, c), 0, "%v <= %v <= %v", a, b, c)
				}
			}
		}
	}
}

func TestDecoderKeyWithDividerLookalike(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		// [2] equals [[2]]; the inserted divider sorts after it at 3.
		{"[1]\n[2]\n\n[5]\n[3]\n", "18"},
		{"[[2]]\n[[6]]\n", "8"}, // dividers land at 2 and 4
		{"[1]\n[7]\n", "6"},
	}
	s := New(nil)
	for _, tt := range tests {
		got, err := s.D13p2(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestPacketString(t *testing.T) {
	for _, s := range []string{"[]", "[[[]]]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", "10"} {
		p, err := parsePacket(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
}

func TestSandOnLedge(t *testing.T) {
	got, err := New(nil).D14p1("498,5 -> 502,5\n")
	require.NoError(t, err)
	assert.Equal(t, "4", got)
}

// sandReachable counts the cells sand can reach above the floor, moving
// down, down-left and down-right through open cells.
func sandReachable(c *cave) int {
	seen := aoc.Set[aoc.Pt]{}
	seen.Add(sandSource)
	q := aoc.NewQueue(sandSource)
	q.While(func(p aoc.Pt) bool {
		for _, dx := range []int{-1, 0, 1} {
			n := aoc.Pt{X: p.X + dx, Y: p.Y + 1}
			if n.Y >= c.maxY+2 || c.rock.Has(n) || seen.Has(n) {
				continue
			}
			seen.Add(n)
			q.Push(n)
		}
		return true
	})
	return seen.Len()
}

func TestSandFillsReachableRegion(t *testing.T) {
	for _, in := range []string{sampleInput(t, 14), "498,5 -> 502,5\n"} {
		c, err := parseCave(in)
		require.NoError(t, err)
		want := sandReachable(c)
		c.floor = true
		assert.Equal(t, want, c.pour(), "input %q", in)
	}
}
