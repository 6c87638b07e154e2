// Package search implements an exhaustive search for the longest simple path
// of a directed, edge-weighted graph.
package search

import (
	"context"
	"math"

	"github.com/rhartert/longpath/graph"
	"github.com/rhartert/longpath/graph/paths"
)

// Config configures the longest path search.
type Config struct {
	// Workers is the maximum number of start vertices explored concurrently.
	// Values lower or equal to 1 result in a sequential search. The returned
	// path does not depend on the number of workers.
	Workers int

	// Prune enables the pruning of branches whose upper bound proves that
	// they cannot lead to a strictly longer path than the best path found so
	// far. Pruning never changes the returned path.
	Prune bool
}

// DefaultConfig returns the configuration used by the command line tool.
func DefaultConfig() Config {
	return Config{Workers: 1, Prune: true}
}

// Stats reports the amount of work done by a search.
type Stats struct {
	Starts   int64 // start vertices explored
	Skipped  int64 // start vertices skipped by their reachability bound
	Expanded int64 // branches compared against the best path
	Pruned   int64 // branches cut by their bound
}

func (s *Stats) add(o Stats) {
	s.Starts += o.Starts
	s.Skipped += o.Skipped
	s.Expanded += o.Expanded
	s.Pruned += o.Pruned
}

// Relative tolerance applied to bounds before pruning. Bounds and distances
// sum the same weights in different orders, and the slack of a branch is
// obtained by subtracting from the sum of all weights. Both can be off by a
// few ulps of the largest partial sum, which is at most weightScale.
const boundTolerance = 1e-9

// weightScale returns the sum of the absolute weights of the edges that can
// be part of a path, i.e. all edges but self loops.
func weightScale(g *graph.Digraph) float64 {
	scale := 0.0
	for _, e := range g.Edges {
		if e.From != e.To {
			scale += math.Abs(e.Weight)
		}
	}
	return scale
}

// Number of branches expanded between two checks of the context.
const cancelCheckInterval = 1 << 12

// Search returns the simple path of g with the largest total weight, together
// with statistics about the search.
//
// Every vertex is used as a start vertex, by increasing identifier, and the
// edges leaving a vertex are explored in insertion order. If several paths
// have the same largest weight, the first one found in that order is
// returned. The empty path is returned if g has no vertices.
//
// The search itself cannot fail. The returned error is only non-nil if ctx
// is done before the search completes, in which case it is ctx.Err().
func Search(ctx context.Context, g *graph.Digraph, cfg Config) (paths.Path, Stats, error) {
	if g.NumVertices() == 0 {
		return paths.Path{}, Stats{}, nil
	}
	if cfg.Workers > 1 {
		return parallel(ctx, g, cfg)
	}

	s := newSearcher(ctx, g, g.MaxOutWeight(), weightScale(g), cfg, nil)
	var reach []float64
	if cfg.Prune {
		reach = reachBounds(g, s.maxOut)
	}
	for start := 0; start < g.NumVertices(); start++ {
		if err := ctx.Err(); err != nil {
			return paths.Path{}, s.stats, err
		}
		if reach != nil && s.loosen(reach[start]) <= s.bestDist {
			s.stats.Skipped++
			continue
		}
		if err := s.run(start); err != nil {
			return paths.Path{}, s.stats, err
		}
	}
	return toPath(g, s.best, s.bestDist), s.stats, nil
}

// searcher explores the branches rooted at one or several start vertices and
// keeps track of the best branch found.
type searcher struct {
	ctx    context.Context
	g      *graph.Digraph
	maxOut []float64
	tol    float64
	cfg    Config
	branch *Branch

	best     []int
	bestDist float64

	// Incumbent shared with other searchers running concurrently, nil for
	// sequential searches.
	shared *incumbent

	stats Stats
	err   error
}

func newSearcher(ctx context.Context, g *graph.Digraph, maxOut []float64, scale float64, cfg Config, shared *incumbent) *searcher {
	return &searcher{
		ctx:      ctx,
		g:        g,
		maxOut:   maxOut,
		tol:      boundTolerance * (1 + scale),
		cfg:      cfg,
		branch:   NewBranch(g, maxOut),
		bestDist: -1, // below any distance, including 0 for single vertices
		shared:   shared,
	}
}

// loosen returns bound increased by the rounding tolerance of the graph.
func (s *searcher) loosen(bound float64) float64 {
	return bound + s.tol
}

// run explores all the simple paths starting from vertex start. It returns
// the context's error if the exploration was interrupted.
func (s *searcher) run(start int) error {
	s.stats.Starts++
	s.branch.Reset(start)
	s.explore()
	return s.err
}

func (s *searcher) explore() {
	s.stats.Expanded++
	if s.stats.Expanded%cancelCheckInterval == 0 {
		s.err = s.ctx.Err()
	}
	if s.err != nil {
		return
	}

	if d := s.branch.Distance(); d > s.bestDist {
		s.bestDist = d
		s.best = append(s.best[:0], s.branch.Path()...)
		if s.shared != nil {
			s.shared.offer(d)
		}
	}

	for _, e := range s.g.OutEdges(s.branch.Current()) {
		if s.branch.Visited(s.g.Edges[e].To) {
			continue
		}
		s.branch.Push(e)
		if s.cfg.Prune && s.cannotImprove(s.branch.Bound()) {
			s.stats.Pruned++
		} else {
			s.explore()
		}
		s.branch.Pop()
		if s.err != nil {
			return
		}
	}
}

// cannotImprove returns true if a branch whose distance cannot exceed bound
// can be ignored without changing the result of the search.
func (s *searcher) cannotImprove(bound float64) bool {
	b := s.loosen(bound)
	if b <= s.bestDist {
		return true // ties lose against the path found first
	}
	// Ties with paths found by other searchers must still be explored as they
	// may come from a later start vertex.
	return s.shared != nil && b < s.shared.load()
}

func toPath(g *graph.Digraph, vertices []int, dist float64) paths.Path {
	if len(vertices) == 0 {
		return paths.Path{}
	}
	ids := make([]int64, len(vertices))
	for i, v := range vertices {
		ids[i] = g.IDs[v]
	}
	return paths.Path{Vertices: ids, Distance: dist}
}

// reachBounds returns, for each vertex s, the sum of maxOut over the vertices
// reachable from s. This is an upper bound on the distance of any path that
// starts from s.
func reachBounds(g *graph.Digraph, maxOut []float64) []float64 {
	n := g.NumVertices()
	bounds := make([]float64, n)
	seen := make([]int, n) // seen[v] == s+1 if v was reached from s
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		queue = append(queue[:0], s)
		seen[s] = s + 1
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			bounds[s] += maxOut[u]
			for _, e := range g.Nexts[u] {
				if v := g.Edges[e].To; seen[v] != s+1 {
					seen[v] = s + 1
					queue = append(queue, v)
				}
			}
		}
	}
	return bounds
}
