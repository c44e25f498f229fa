package solutions

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

// packet is either an integer or a list of packets.
type packet struct {
	isList bool
	n      int
	list   []packet
}

func (p packet) String() string {
	if !p.isList {
		return strconv.Itoa(p.n)
	}
	parts := make([]string, len(p.list))
	for i, e := range p.list {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

type packetParser struct {
	s   string
	pos int
}

func parsePacket(s string) (packet, error) {
	pp := &packetParser{s: s}
	p, err := pp.parse()
	if err != nil {
		return packet{}, err
	}
	if pp.pos != len(s) {
		return packet{}, aoc.Parsef("trailing data at offset %d in %q", pp.pos, s)
	}
	return p, nil
}

func (pp *packetParser) parse() (packet, error) {
	if pp.pos >= len(pp.s) {
		return packet{}, aoc.Parsef("unexpected end of packet %q", pp.s)
	}
	if pp.s[pp.pos] != '[' {
		return pp.parseInt()
	}
	pp.pos++
	p := packet{isList: true}
	if pp.pos < len(pp.s) && pp.s[pp.pos] == ']' {
		pp.pos++
		return p, nil
	}
	for {
		e, err := pp.parse()
		if err != nil {
			return packet{}, err
		}
		p.list = append(p.list, e)
		if pp.pos >= len(pp.s) {
			return packet{}, aoc.Parsef("unterminated list in %q", pp.s)
		}
		switch pp.s[pp.pos] {
		case ',':
			pp.pos++
		case ']':
			pp.pos++
			return p, nil
		default:
			return packet{}, aoc.Parsef("unexpected %q at offset %d in %q", pp.s[pp.pos], pp.pos, pp.s)
		}
	}
}

func (pp *packetParser) parseInt() (packet, error) {
	start := pp.pos
	for pp.pos < len(pp.s) && pp.s[pp.pos] >= '0' && pp.s[pp.pos] <= '9' {
		pp.pos++
	}
	if start == pp.pos {
		return packet{}, aoc.Parsef("unexpected %q at offset %d in %q", pp.s[pp.pos], pp.pos, pp.s)
	}
	n, err := strconv.Atoi(pp.s[start:pp.pos])
	if err != nil {
		return packet{}, aoc.Parsef("invalid integer %q", pp.s[start:pp.pos])
	}
	return packet{n: n}, nil
}

// comparePackets orders packets. An integer compared with a list is
// treated as a one-element list.
func comparePackets(a, b packet) int {
	switch {
	case !a.isList && !b.isList:
		return cmp.Compare(a.n, b.n)
	case !a.isList:
		return -compareWrapped(b.list, a)
	case !b.isList:
		return compareWrapped(a.list, b)
	}
	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := comparePackets(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.list), len(b.list))
}

// compareWrapped compares list with [n] without allocating it.
func compareWrapped(list []packet, n packet) int {
	if len(list) == 0 {
		return -1
	}
	if c := comparePackets(list[0], n); c != 0 {
		return c
	}
	return cmp.Compare(len(list), 1)
}

// parsePairs reads the blank-line separated pairs of packets.
func parsePairs(input string) ([][2]packet, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) == 0 {
		return nil, aoc.Parsef("empty input")
	}
	pairs := make([][2]packet, len(blocks))
	line := 1
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) != 2 {
			return nil, aoc.AtLine(line, aoc.Parsef("want a pair of packets, got %d lines", len(lines)))
		}
		for j, l := range lines {
			p, err := parsePacket(l)
			if err != nil {
				return nil, aoc.AtLine(line+j, err)
			}
			pairs[i][j] = p
		}
		line += 3
	}
	return pairs, nil
}

func (s *Solver) D13p1(input string) (string, error) {
	pairs, err := parsePairs(input)
	if err != nil {
		return "", err
	}
	sum := 0
	for i, pair := range pairs {
		if comparePackets(pair[0], pair[1]) <= 0 {
			sum += i + 1
		}
	}
	return strconv.Itoa(sum), nil
}

// D13p2 sorts every packet together with the two dividers and multiplies
// the dividers' 1-based positions. The inserted dividers are tracked by
// index, so an input packet that compares equal to one sorts before it.
func (s *Solver) D13p2(input string) (string, error) {
	pairs, err := parsePairs(input)
	if err != nil {
		return "", err
	}
	packets := make([]packet, 0, 2*len(pairs)+2)
	for _, pair := range pairs {
		packets = append(packets, pair[0], pair[1])
	}
	first := len(packets)
	packets = append(packets,
		aoc.MustGet(parsePacket("[[2]]")),
		aoc.MustGet(parsePacket("[[6]]")))

	order := make([]int, len(packets))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return comparePackets(packets[a], packets[b])
	})
	key := 1
	for d := first; d < len(packets); d++ {
		key *= slices.Index(order, d) + 1
	}
	return strconv.Itoa(key), nil
}
