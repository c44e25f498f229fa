package aoc

import (
	"cmp"
	"container/heap"

	"golang.org/x/exp/maps"
)

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v ...T) {
	s.s = append(s.s, v...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// PopN removes up to n elements from the top of the stack and returns
// them in bottom-to-top order.
func (s *Stack[T]) PopN(n int) []T {
	n = min(n, len(s.s))
	top := make([]T, n)
	copy(top, s.s[len(s.s)-n:])
	s.s = s.s[:len(s.s)-n]
	return top
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

// Items returns the stack contents bottom to top.
func (s *Stack[T]) Items() []T {
	return s.s
}

func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

type Queue[T any] struct {
	q []T
}

func (q *Queue[T]) Len() int {
	return len(q.q)
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	if len(q.q) == 0 {
		var zero T
		return zero, false
	}
	v := q.q[0]
	q.q = q.q[1:]
	return v, true
}

// Drain removes and returns everything in the queue.
func (q *Queue[T]) Drain() []T {
	out := q.q
	q.q = nil
	return out
}

func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Set is an unordered set of comparable values.
type Set[T comparable] map[T]struct{}

func (s Set[T]) Add(v T) { s[v] = struct{}{} }

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// Intersect returns the values present in both s and o.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	out := Set[T]{}
	for v := range s {
		if o.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Values returns the members of s in unspecified order.
func (s Set[T]) Values() []T {
	return maps.Keys(s)
}

// MinQueue is a min-heap of ordered values.
type MinQueue[T cmp.Ordered] struct {
	pq pq[T]
}

func (q *MinQueue[T]) Push(v T) {
	heap.Push(&q.pq, v)
}

func (q *MinQueue[T]) Pop() T {
	return heap.Pop(&q.pq).(T)
}

func (q *MinQueue[T]) Peek() T {
	return q.pq[0]
}

func (q *MinQueue[T]) Len() int {
	return q.pq.Len()
}

type pq[T cmp.Ordered] []T

func (pq pq[T]) Len() int           { return len(pq) }
func (pq pq[T]) Less(i, j int) bool { return pq[i] < pq[j] }
func (pq pq[T]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pq[T]) Push(x any) {
	*pq = append(*pq, x.(T))
}

func (pq *pq[T]) Pop() any {
	old := *pq
	n := len(old)
	v := old[n-1]
	*pq = old[:n-1]
	return v
}

// TopN returns the n largest values of in, largest first. If in has
// fewer than n values, all of them are returned.
func TopN[T cmp.Ordered](in []T, n int) []T {
	var q MinQueue[T]
	for _, v := range in {
		if q.Len() < n {
			q.Push(v)
			continue
		}
		if n > 0 && v > q.Peek() {
			q.Pop()
			q.Push(v)
		}
	}
	out := make([]T, q.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = q.Pop()
	}
	return out
}
