// Package aoc holds the shared plumbing for the Advent of Code 2022
// solutions: a registry of puzzle parts, the embedded samples, and the
// small grid/parsing/math helpers the days lean on.
package aoc

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"
)

// SolveFunc is the signature of a single puzzle part.
type SolveFunc func(input string) (string, error)

// Part is one registered puzzle part.
type Part struct {
	Num  int
	Name string // method name, e.g. D7p2

	fn SolveFunc
}

// Day is a puzzle day and its parts, sorted by part number.
type Day struct {
	Num   int
	Parts []Part
}

// Registry maps days to their solvers.
type Registry struct {
	days map[int]Day
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+)$`)

// Register builds a Registry from the methods of x named D{day}p{part}.
// x must be a pointer to a struct; every matching method must have the
// SolveFunc signature.
func Register(x any) (*Registry, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("Register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]Part{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(mn)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func(string) (string, error))
		if !ok {
			return nil, fmt.Errorf("Register: method %s has signature %v", mn, v.Method(i).Type())
		}
		day, _ := strconv.Atoi(m[1])
		part, _ := strconv.Atoi(m[2])
		byDays[day] = append(byDays[day], Part{
			Num:  part,
			Name: mn,
			fn:   fn,
		})
	}
	if len(byDays) == 0 {
		return nil, fmt.Errorf("Register: %T has no D{day}p{part} methods", x)
	}
	days := make(map[int]Day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(a, b Part) int { return a.Num - b.Num })
		days[d] = Day{Num: d, Parts: parts}
	}
	return &Registry{days: days}, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []Day {
	nums := maps.Keys(r.days)
	slices.Sort(nums)
	out := make([]Day, 0, len(nums))
	for _, n := range nums {
		out = append(out, r.days[n])
	}
	return out
}

// Lookup returns the solver for the given day and part.
func (r *Registry) Lookup(day, part int) (SolveFunc, error) {
	d, ok := r.days[day]
	if !ok {
		return nil, Errorf(InvalidArgument, "invalid day: %d", day)
	}
	for _, p := range d.Parts {
		if p.Num == part {
			return p.fn, nil
		}
	}
	return nil, Errorf(InvalidArgument, "invalid part: %d", part)
}
