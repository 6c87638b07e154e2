package search

import (
	"context"
	"math"
	"sync/atomic"

	"github.com/rhartert/longpath/graph"
	"github.com/rhartert/longpath/graph/paths"
	"github.com/rhartert/yagh"
	"golang.org/x/sync/errgroup"
)

// incumbent is the largest distance found by any of the searchers running
// concurrently. It is only used to prune branches, the path itself is kept by
// the searcher that found it.
type incumbent struct {
	bits atomic.Uint64
}

func newIncumbent() *incumbent {
	inc := &incumbent{}
	inc.bits.Store(math.Float64bits(-1))
	return inc
}

func (inc *incumbent) load() float64 {
	return math.Float64frombits(inc.bits.Load())
}

// offer replaces the incumbent distance by d if d is strictly greater.
func (inc *incumbent) offer(d float64) {
	for {
		old := inc.bits.Load()
		if d <= math.Float64frombits(old) {
			return
		}
		if inc.bits.CompareAndSwap(old, math.Float64bits(d)) {
			return
		}
	}
}

// startResult is the best path found from one start vertex.
type startResult struct {
	path  []int
	dist  float64
	stats Stats
}

// parallel explores the start vertices concurrently. Each start vertex is
// explored by its own searcher and the results are combined by increasing
// start vertex, which yields the same path as the sequential search.
func parallel(ctx context.Context, g *graph.Digraph, cfg Config) (paths.Path, Stats, error) {
	n := g.NumVertices()
	maxOut := g.MaxOutWeight()
	scale := weightScale(g)
	shared := newIncumbent()
	results := make([]startResult, n)

	// Start vertices with the largest reachability bounds are scheduled first
	// as they are the most likely to quickly raise the incumbent.
	reach := reachBounds(g, maxOut)
	queue := yagh.New[float64](n)
	for s := 0; s < n; s++ {
		queue.Put(s, -reach[s])
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for queue.Size() > 0 && egCtx.Err() == nil {
		start := queue.Pop().Elem
		eg.Go(func() error {
			s := newSearcher(egCtx, g, maxOut, scale, cfg, shared)
			r, err := exploreStart(s, start, reach[start])
			results[start] = r
			return err
		})
	}
	err := eg.Wait()

	var best []int
	bestDist := -1.0
	stats := Stats{}
	for _, r := range results {
		stats.add(r.stats)
		if r.path != nil && r.dist > bestDist {
			best, bestDist = r.path, r.dist
		}
	}
	if err == nil {
		err = ctx.Err() // dispatch may have stopped before any worker failed
	}
	if err != nil {
		return paths.Path{}, stats, err
	}
	return toPath(g, best, bestDist), stats, nil
}

func exploreStart(s *searcher, start int, reach float64) (startResult, error) {
	if err := s.ctx.Err(); err != nil {
		return startResult{dist: -1}, err
	}
	// A start vertex whose bound is strictly below the incumbent cannot
	// produce the returned path, not even as a tie.
	if s.cfg.Prune && s.loosen(reach) < s.shared.load() {
		return startResult{dist: -1, stats: Stats{Skipped: 1}}, nil
	}
	err := s.run(start)
	return startResult{path: s.best, dist: s.bestDist, stats: s.stats}, err
}
