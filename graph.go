package aoc

// Graph is a directed graph with weighted edges.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds a directed edge from a to b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// Reverse returns g with every edge flipped.
func (g *Graph[K]) Reverse() *Graph[K] {
	var out Graph[K]
	for k := range g.Nodes {
		out.AddNode(k)
	}
	for a, e := range g.Edges {
		for b, d := range e {
			out.AddEdge(b, a, d)
		}
	}
	return &out
}

// Distances returns the number of edges on the shortest path from start
// to every reachable node. Edge weights are ignored.
func (g *Graph[K]) Distances(start K) map[K]int {
	dist := map[K]int{start: 0}
	q := NewQueue(start)
	q.While(func(v K) bool {
		for k := range g.Edges[v] {
			if _, ok := dist[k]; ok {
				continue
			}
			dist[k] = dist[v] + 1
			q.Push(k)
		}
		return true
	})
	return dist
}

// ToGraph converts the grid into a graph over its cells with an edge to
// each orthogonal neighbour for which allowed returns true.
func (grid Grid[T]) ToGraph(allowed func(from, to T) bool) *Graph[Pt] {
	var g Graph[Pt]
	grid.ForEach(func(p1 Pt, v1 T) {
		g.AddNode(p1)
		p1.ForImmediateNeighbors(func(p2 Pt) (keepGoing bool) {
			if v2, ok := grid.AtOk(p2); ok && allowed(v1, v2) {
				g.AddEdge(p1, p2, 1)
			}
			return true
		})
	})
	return &g
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
