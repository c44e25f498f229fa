package aoc

import (
	"slices"
	"sync"
	"testing"
)

func TestFollow(t *testing.T) {
	tests := []struct {
		p, leader, want Pt
	}{
		{Pt{0, 0}, Pt{0, 0}, Pt{0, 0}},
		{Pt{0, 0}, Pt{1, 1}, Pt{0, 0}},
		{Pt{0, 0}, Pt{2, 0}, Pt{1, 0}},
		{Pt{0, 0}, Pt{0, -2}, Pt{0, -1}},
		{Pt{0, 0}, Pt{2, 1}, Pt{1, 1}},
		{Pt{0, 0}, Pt{-2, -2}, Pt{-1, -1}},
	}
	for _, tt := range tests {
		if got := tt.p.Follow(tt.leader); got != tt.want {
			t.Errorf("%v.Follow(%v) = %v, want %v", tt.p, tt.leader, got, tt.want)
		}
	}
}

func TestSegmentWalk(t *testing.T) {
	var got []Pt
	Segment{Pt{498, 6}, Pt{496, 6}}.Walk(func(p Pt) { got = append(got, p) })
	want := []Pt{{498, 6}, {497, 6}, {496, 6}}
	if !slices.Equal(got, want) {
		t.Errorf("Walk = %v, want %v", got, want)
	}

	got = nil
	Segment{Pt{1, 1}, Pt{1, 1}}.Walk(func(p Pt) { got = append(got, p) })
	if !slices.Equal(got, []Pt{{1, 1}}) {
		t.Errorf("Walk of a point = %v", got)
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("12\n34\n", func(_ Pt, r rune) (int, error) { return Digit(r) })
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Size(); got != (Pt{2, 2}) {
		t.Errorf("Size = %v", got)
	}
	if got := g.At(Pt{1, 0}); got != 2 {
		t.Errorf("At(1,0) = %v, want 2", got)
	}
	if got := g.String(); got != "12\n34\n" {
		t.Errorf("String = %q", got)
	}

	for _, in := range []string{"12\n3", "1x", "", "12\n\n34"} {
		if _, err := ParseGrid(in, func(_ Pt, r rune) (int, error) { return Digit(r) }); KindOf(err) != Parse {
			t.Errorf("ParseGrid(%q) err = %v, want Parse error", in, err)
		}
	}
}

func TestLook(t *testing.T) {
	g := Grid[int]{
		{1, 2, 3},
		{4, 5, 6},
	}
	var got []int
	g.Look(Pt{0, 0}, Right, func(_ Pt, v int) bool {
		got = append(got, v)
		return true
	})
	if !slices.Equal(got, []int{2, 3}) {
		t.Errorf("Look right = %v", got)
	}
	got = nil
	g.Look(Pt{0, 0}, Up, func(_ Pt, v int) bool {
		got = append(got, v)
		return true
	})
	if len(got) != 0 {
		t.Errorf("Look up from the edge = %v", got)
	}
}

func TestGridHash(t *testing.T) {
	a := Grid[int]{{1, 2}, {3, 4}}
	b := Grid[int]{{1, 2}, {3, 4}}
	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently")
	}
	b.Set(Pt{1, 1}, 5)
	if a.Hash() == b.Hash() {
		t.Error("different grids hash the same")
	}

	c := Grid[byte]{{1, 2}, {3, 4}}
	d := Grid[byte]{{1, 2}, {3, 4}}
	if c.Hash() != d.Hash() {
		t.Error("equal byte grids hash differently")
	}
}

func TestGridHashConcurrent(t *testing.T) {
	g := Grid[int]{{1, 2}, {3, 4}}
	want := g.Hash()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := g.Hash(); got != want {
				t.Errorf("Hash = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestGraphDistances(t *testing.T) {
	g := Grid[int]{
		{0, 1, 2},
		{5, 4, 3},
	}
	gr := g.ToGraph(func(from, to int) bool { return to <= from+1 })
	d := gr.Distances(Pt{0, 0})
	if got := d[Pt{0, 1}]; got != 5 {
		t.Errorf("distance to (0,1) = %d, want 5", got)
	}
	back := gr.Reverse().Distances(Pt{0, 1})
	if got := back[Pt{0, 0}]; got != 5 {
		t.Errorf("reverse distance = %d, want 5", got)
	}
	if all := gr.Reverse().Distances(Pt{2, 1}); len(all) != 6 {
		t.Errorf("reverse from (2,1) reaches %d cells, want 6", len(all))
	}
}

func TestTopN(t *testing.T) {
	tests := []struct {
		in   []int
		n    int
		want []int
	}{
		{[]int{6000, 4000, 11000, 24000, 10000}, 3, []int{24000, 11000, 10000}},
		{[]int{1, 2}, 3, []int{2, 1}},
		{nil, 3, []int{}},
		{[]int{5, 5, 5}, 2, []int{5, 5}},
		{[]int{1}, 0, []int{}},
	}
	for _, tt := range tests {
		if got := TopN(tt.in, tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("TopN(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestStackPopN(t *testing.T) {
	var s Stack[byte]
	s.Push('a', 'b', 'c')
	if got := string(s.PopN(2)); got != "bc" {
		t.Errorf("PopN(2) = %q, want %q", got, "bc")
	}
	if got := string(s.PopN(5)); got != "a" {
		t.Errorf("PopN(5) = %q, want %q", got, "a")
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack succeeded")
	}
}

func TestLines(t *testing.T) {
	got, err := Lines("a\nb\n")
	if err != nil || !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Lines = %q, %v", got, err)
	}
	for _, in := range []string{"", "\n", "a\n\n", "a\n\nb"} {
		if _, err := Lines(in); KindOf(err) != Parse {
			t.Errorf("Lines(%q) err = %v, want Parse error", in, err)
		}
	}
}

func TestLCM(t *testing.T) {
	if got := LCM[uint64](4, 6, 10); got != 60 {
		t.Errorf("LCM(4, 6, 10) = %d, want 60", got)
	}
	if got := LCM(23, 19, 13, 17); got != 96577 {
		t.Errorf("LCM = %d, want 96577", got)
	}
	if got := LCM(4, 6); got != 12 {
		t.Errorf("LCM(4, 6) = %d, want 12", got)
	}
}
