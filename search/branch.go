package search

import (
	"github.com/rhartert/longpath/graph"
	"github.com/rhartert/sparsesets"
)

// Branch is a reversible structure which represents the path being explored
// by the depth-first search. Extending the branch with Push and undoing the
// extension with Pop restore the previous state exactly, which allows all
// the siblings of a vertex to be explored from the same structure.
type Branch struct {
	g      *graph.Digraph
	maxOut []float64

	// Stacks of vertices, distances, and slacks. The i-th entry of each stack
	// describes the branch when it is made of its first i+1 vertices. Keeping
	// the previous values (rather than subtracting on Pop) guarantees that
	// floating point values are restored bit for bit.
	path   []int
	dists  []float64
	slacks []float64

	// Vertices currently on the path, for O(1) membership tests.
	visited *sparsesets.Set

	// Sum of maxOut over all the vertices of the graph.
	totalSlack float64
}

// NewBranch initializes and returns a new empty Branch on graph g. Slice
// maxOut must contain the non-negative upper bound on the weight of the edges
// leaving each vertex (see graph.Digraph.MaxOutWeight).
func NewBranch(g *graph.Digraph, maxOut []float64) *Branch {
	n := g.NumVertices()
	total := 0.0
	for _, w := range maxOut {
		total += w
	}
	return &Branch{
		g:          g,
		maxOut:     maxOut,
		path:       make([]int, 0, n),
		dists:      make([]float64, 0, n),
		slacks:     make([]float64, 0, n),
		visited:    sparsesets.New(n),
		totalSlack: total,
	}
}

// Reset clears the branch and makes it start from vertex start with a
// distance of 0.
func (b *Branch) Reset(start int) {
	b.visited.Clear()
	b.path = append(b.path[:0], start)
	b.dists = append(b.dists[:0], 0)
	b.slacks = append(b.slacks[:0], b.totalSlack-b.maxOut[start])
	b.visited.Insert(start)
}

// Push extends the branch with edge e. The edge must leave the last vertex of
// the branch and its destination must not be visited yet.
func (b *Branch) Push(e int) {
	edge := b.g.Edges[e]
	top := len(b.path) - 1
	b.path = append(b.path, edge.To)
	b.dists = append(b.dists, b.dists[top]+edge.Weight)
	b.slacks = append(b.slacks, b.slacks[top]-b.maxOut[edge.To])
	b.visited.Insert(edge.To)
}

// Pop undoes the last call to Push.
func (b *Branch) Pop() {
	top := len(b.path) - 1
	b.visited.Remove(b.path[top])
	b.path = b.path[:top]
	b.dists = b.dists[:top]
	b.slacks = b.slacks[:top]
}

// Current returns the last vertex of the branch.
func (b *Branch) Current() int {
	return b.path[len(b.path)-1]
}

// Distance returns the total weight of the edges in the branch.
func (b *Branch) Distance() float64 {
	return b.dists[len(b.dists)-1]
}

// Visited returns true if vertex v is on the branch.
func (b *Branch) Visited(v int) bool {
	return b.visited.Contains(v)
}

// Bound returns an upper bound on the distance of any branch that extends
// the current one. Each additional edge leaves a distinct vertex that is
// either the current vertex or a vertex not yet visited, hence the bound.
func (b *Branch) Bound() float64 {
	top := len(b.path) - 1
	return b.dists[top] + b.maxOut[b.path[top]] + b.slacks[top]
}

// Path returns the sequence of vertices in the branch.
//
// Important: the slice is a view on one of the branch's internal structure
// and should only be used in read-only operations. Modifying the slice will
// most likely results in incorrect behavior.
func (b *Branch) Path() []int {
	return b.path
}
