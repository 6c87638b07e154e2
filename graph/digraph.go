// Package graph builds the directed, edge-weighted graphs explored by the
// longest path search.
package graph

import "sort"

// Edge represents a weighted edge between two vertices of a Digraph. From and
// To are dense vertex indices (see Digraph.IDs), not vertex identifiers.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Digraph represents a directed graph with arbitrary integer vertex
// identifiers.
//
// Vertices are addressed by their dense index in IDs, which is sorted by
// increasing identifier. Nexts[u] holds the indices in Edges of the edges
// leaving vertex u, in insertion order. Every vertex has an entry in Nexts,
// possibly empty.
type Digraph struct {
	IDs   []int64
	Nexts [][]int
	Edges []Edge
}

// NewDigraph creates a new directed graph with the specified vertex
// identifiers and edges. The identifiers must be sorted in increasing order
// and distinct, and edges must only reference indices within [0, len(ids));
// otherwise, the function will panic.
func NewDigraph(ids []int64, edges []Edge) *Digraph {
	if !sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }) {
		panic("graph: vertex identifiers are not sorted")
	}
	dg := &Digraph{
		IDs:   make([]int64, len(ids)),
		Nexts: make([][]int, len(ids)),
		Edges: make([]Edge, len(edges)),
	}
	copy(dg.IDs, ids)
	for i, e := range edges {
		dg.Edges[i] = e
		dg.Nexts[e.From] = append(dg.Nexts[e.From], i)
	}
	return dg
}

// NumVertices returns the number of vertices in the graph.
func (g *Digraph) NumVertices() int {
	return len(g.IDs)
}

// Index returns the dense index of the vertex with the given identifier. The
// second returned value is false if the vertex is not in the graph.
func (g *Digraph) Index(id int64) (int, bool) {
	i := sort.Search(len(g.IDs), func(i int) bool { return g.IDs[i] >= id })
	if i < len(g.IDs) && g.IDs[i] == id {
		return i, true
	}
	return -1, false
}

// OutEdges returns the indices of the edges leaving vertex u.
//
// Important: the slice is a view on the graph's internal structure and should
// only be used in read-only operations.
func (g *Digraph) OutEdges(u int) []int {
	return g.Nexts[u]
}

// HasEdge returns true if at least one edge goes from vertex u to vertex v.
func (g *Digraph) HasEdge(u int, v int) bool {
	for _, e := range g.Nexts[u] {
		if g.Edges[e].To == v {
			return true
		}
	}
	return false
}

// MaxOutWeight returns, for each vertex, the largest weight among its
// outgoing edges clamped below at 0. Self loops are ignored as no simple path
// can traverse them. Sink vertices have a value of 0.
func (g *Digraph) MaxOutWeight() []float64 {
	maxOut := make([]float64, len(g.IDs))
	for u, nexts := range g.Nexts {
		for _, e := range nexts {
			if g.Edges[e].To == u {
				continue
			}
			if w := g.Edges[e].Weight; w > maxOut[u] {
				maxOut[u] = w
			}
		}
	}
	return maxOut
}
