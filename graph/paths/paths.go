// Package paths provides the representation of simple paths reported by the
// longest path search.
package paths

import (
	"fmt"
	"strings"

	"github.com/rhartert/longpath/graph"
)

// Path represents a simple path in a Digraph as the sequence of its vertex
// identifiers, from source to destination, and the total weight of the edges
// it traverses.
//
// The zero value is the empty path.
type Path struct {
	Vertices []int64
	Distance float64
}

// Length returns the length of the path in terms of vertices.
func (p Path) Length() int {
	return len(p.Vertices)
}

// Empty returns true if the path has no vertices.
func (p Path) Empty() bool {
	return len(p.Vertices) == 0
}

// Validate returns an error if the path is not a simple path of g. A path is
// valid if all its vertices are in g, no vertex appears twice, and each pair
// of consecutive vertices is connected by an edge of g. The empty path is
// valid.
func (p Path) Validate(g *graph.Digraph) error {
	seen := make(map[int64]bool, len(p.Vertices))
	prev := -1
	for i, id := range p.Vertices {
		u, ok := g.Index(id)
		if !ok {
			return fmt.Errorf("vertex %d at position %d is not in the graph", id, i)
		}
		if seen[id] {
			return fmt.Errorf("vertex %d is visited more than once", id)
		}
		seen[id] = true
		if prev != -1 && !g.HasEdge(prev, u) {
			return fmt.Errorf("no edge from %d to %d", p.Vertices[i-1], id)
		}
		prev = u
	}
	return nil
}

// String returns a string representation of the path as a sequence of
// vertices separated by " -> ". For example: "0 -> 4 -> 3 -> 1".
func (p Path) String() string {
	sb := strings.Builder{}
	for i, id := range p.Vertices {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(fmt.Sprintf("%d", id))
	}
	return sb.String()
}
