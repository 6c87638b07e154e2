package graph

import "sort"

type rawEdge struct {
	from   int64
	to     int64
	weight float64
}

// Builder accumulates edges keyed by vertex identifier and turns them into a
// Digraph. The zero value is not usable, use NewBuilder.
type Builder struct {
	edges    []rawEdge
	vertices map[int64]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{vertices: map[int64]struct{}{}}
}

// AddEdge registers an edge from vertex from to vertex to. Both endpoints are
// added to the vertex set. Parallel edges are kept as distinct edges.
func (b *Builder) AddEdge(from int64, to int64, weight float64) {
	b.edges = append(b.edges, rawEdge{from, to, weight})
	b.vertices[from] = struct{}{}
	b.vertices[to] = struct{}{}
}

// Build returns the Digraph made of all the edges added so far. Vertex
// indices follow increasing identifiers and the outgoing edges of each vertex
// keep their insertion order.
func (b *Builder) Build() *Digraph {
	ids := make([]int64, 0, len(b.vertices))
	for id := range b.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	edges := make([]Edge, len(b.edges))
	for i, e := range b.edges {
		edges[i] = Edge{
			From:   index[e.from],
			To:     index[e.to],
			Weight: e.weight,
		}
	}
	return NewDigraph(ids, edges)
}
