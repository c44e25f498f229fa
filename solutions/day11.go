package solutions

import (
	"math/bits"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
	"go.uber.org/zap"
)

// worryOp is the "new = old <op> <operand>" rule of a monkey.
type worryOp struct {
	mul     bool
	operand uint64
	old     bool // operand is "old"
}

// apply returns the new worry level. It reports false on overflow.
func (o worryOp) apply(v uint64) (uint64, bool) {
	n := o.operand
	if o.old {
		n = v
	}
	if o.mul {
		hi, lo := bits.Mul64(v, n)
		return lo, hi == 0
	}
	sum, carry := bits.Add64(v, n, 0)
	return sum, carry == 0
}

type monkey struct {
	items       aoc.Queue[uint64]
	op          worryOp
	divisor     uint64
	ifTrue      int
	ifFalse     int
	inspections int
}

func (m *monkey) target(v uint64) int {
	if v%m.divisor == 0 {
		return m.ifTrue
	}
	return m.ifFalse
}

// monkeyLine strips the expected prefix from line i of a monkey block.
func monkeyLine(lines []string, i int, prefix string) (string, error) {
	s, err := aoc.TrimPrefix(lines[i], prefix)
	if err != nil {
		return "", aoc.AtLine(i+1, err)
	}
	return s, nil
}

func parseMonkey(block string, index int) (*monkey, error) {
	lines := strings.Split(block, "\n")
	if len(lines) != 6 {
		return nil, aoc.Parsef("monkey block has %d lines, want 6", len(lines))
	}
	head, err := monkeyLine(lines, 0, "Monkey ")
	if err != nil {
		return nil, err
	}
	if n, err := aoc.Int(strings.TrimSuffix(head, ":")); err != nil || n != index || !strings.HasSuffix(head, ":") {
		return nil, aoc.AtLine(1, aoc.Parsef("want header %q, got %q", "Monkey "+strconv.Itoa(index)+":", lines[0]))
	}

	m := &monkey{}
	items, err := monkeyLine(lines, 1, "  Starting items:")
	if err != nil {
		return nil, err
	}
	if items = strings.TrimSpace(items); items != "" {
		for _, it := range strings.Split(items, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(it), 10, 64)
			if err != nil {
				return nil, aoc.AtLine(2, aoc.Parsef("invalid item %q", it))
			}
			m.items.Push(v)
		}
	}

	op, err := monkeyLine(lines, 2, "  Operation: new = old ")
	if err != nil {
		return nil, err
	}
	f, err := aoc.Fields(op, 2)
	if err != nil {
		return nil, aoc.AtLine(3, err)
	}
	switch f[0] {
	case "*":
		m.op.mul = true
	case "+":
	default:
		return nil, aoc.AtLine(3, aoc.Parsef("unknown operator %q", f[0]))
	}
	if f[1] == "old" {
		m.op.old = true
	} else if m.op.operand, err = strconv.ParseUint(f[1], 10, 64); err != nil {
		return nil, aoc.AtLine(3, aoc.Parsef("invalid operand %q", f[1]))
	}

	nums := make([]int, 3)
	for i, prefix := range []string{
		"  Test: divisible by ",
		"    If true: throw to monkey ",
		"    If false: throw to monkey ",
	} {
		s, err := monkeyLine(lines, i+3, prefix)
		if err != nil {
			return nil, err
		}
		if nums[i], err = aoc.Int(s); err != nil {
			return nil, aoc.AtLine(i+4, err)
		}
	}
	if nums[0] <= 0 {
		return nil, aoc.AtLine(4, aoc.Parsef("divisor must be positive, got %d", nums[0]))
	}
	m.divisor = uint64(nums[0])
	m.ifTrue, m.ifFalse = nums[1], nums[2]
	return m, nil
}

func parseMonkeys(input string) ([]*monkey, error) {
	var ms []*monkey
	line := 1
	for i, block := range aoc.Blocks(input) {
		m, err := parseMonkey(block, i)
		if err != nil {
			return nil, aoc.AtLine(line, err)
		}
		ms = append(ms, m)
		line += strings.Count(block, "\n") + 2
	}
	if len(ms) == 0 {
		return nil, aoc.Parsef("no monkeys")
	}
	for i, m := range ms {
		for _, t := range []int{m.ifTrue, m.ifFalse} {
			if t < 0 || t >= len(ms) || t == i {
				return nil, aoc.Logicf("monkey %d throws to invalid monkey %d", i, t)
			}
		}
	}
	return ms, nil
}

// monkeyBusiness plays rounds of keep-away and returns the product of the
// two largest inspection counts. With relief, worry is divided by three
// after each inspection; without it worry is kept modulo
// the divisors' least common multiple, which leaves every divisibility
// test unchanged.
func monkeyBusiness(input string, rounds int, relief bool, log *zap.Logger) (string, error) {
	ms, err := parseMonkeys(input)
	if err != nil {
		return "", err
	}
	divisors := make([]uint64, len(ms))
	for i, m := range ms {
		divisors[i] = m.divisor
	}
	modulus := aoc.LCM(divisors...)
	for r := 0; r < rounds; r++ {
		for _, m := range ms {
			for _, v := range m.items.Drain() {
				v, ok := m.op.apply(v)
				if !ok {
					return "", aoc.Logicf("worry level overflow in round %d", r+1)
				}
				if relief {
					v /= 3
				} else {
					v %= modulus
				}
				ms[m.target(v)].items.Push(v)
				m.inspections++
			}
		}
	}
	counts := make([]int, len(ms))
	for i, m := range ms {
		counts[i] = m.inspections
	}
	log.Debug("monkeys done", zap.Int("rounds", rounds), zap.Ints("inspections", counts))
	return strconv.Itoa(aoc.Product(aoc.TopN(counts, 2)...)), nil
}

func (s *Solver) D11p1(input string) (string, error) {
	return monkeyBusiness(input, 20, true, s.log)
}

func (s *Solver) D11p2(input string) (string, error) {
	return monkeyBusiness(input, 10_000, false, s.log)
}
