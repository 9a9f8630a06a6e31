// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// directed graphs with non-negative edge weights.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: every improvement pushes a fresh frontier entry; on
//     pop, an entry whose distance is greater than the recorded distance is
//     stale and skipped.
//   - Top-level graph keys start at Infinity. Nodes that only appear as edge
//     targets are discovered lazily the first time they are relaxed.
//   - Frontier ties are broken by node ID ascending and neighbors are relaxed
//     in ID order, so results are deterministic for a given graph.
//   - Sums that would overflow int64 are treated as Infinity.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ShortestPaths computes, for every node reachable from start, the minimum
// total edge weight of a directed path from start, plus a predecessor map
// from which one such path can be rebuilt.
//
// A start node absent from g is an isolated node at distance 0. Negative
// weights are a precondition violation and are not detected here; use
// Dijkstra with WithWeightCheck to reject them.
//
// The graph is only read. Each call allocates its own frontier and result
// maps, so concurrent calls over the same graph are safe.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPaths(g core.Graph, start string) (Distances, Predecessors) {
	// Default options cannot record an error.
	dist, prev, _ := Dijkstra(g, start)

	return dist, prev
}

// Dijkstra is ShortestPaths with functional options.
//
// Returns ErrOptionViolation for an invalid option, or ErrNegativeWeight
// (wrapped with the offending edge) when WithWeightCheck is set and g
// contains a negative weight.
func Dijkstra(g core.Graph, start string, opts ...Option) (Distances, Predecessors, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	if cfg.CheckWeights {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	r := &runner{
		g:    g,
		opts: cfg,
		dist: make(Distances, len(g)+1),
		prev: make(Predecessors, len(g)),
		pq:   make(frontier, 0, len(g)+1),
	}
	r.init(start)
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g    core.Graph
	opts Options
	dist Distances
	prev Predecessors
	pq   frontier
}

// init seeds every top-level key with Infinity, the start with 0, and pushes
// (0, start) onto the frontier.
func (r *runner) init(start string) {
	for v := range r.g {
		r.dist[v] = Infinity
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, item{id: start, dist: 0})
}

// process pops the closest frontier entry until the frontier is empty,
// skipping stale entries and relaxing the rest.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(item)
		if it.dist > r.dist[it.id] {
			continue
		}
		r.opts.OnSettle(it.id, it.dist)
		r.relax(it.id, it.dist)
	}
}

// relax tries to improve every neighbor of u through u, whose final
// distance is d.
func (r *runner) relax(u string, d int64) {
	for _, e := range r.g.Neighbors(u) {
		if e.Weight >= r.opts.InfEdgeThreshold {
			continue
		}

		cand := addDist(d, e.Weight)
		if cand > r.opts.MaxDistance {
			continue
		}

		cur, ok := r.dist[e.To]
		if !ok {
			cur = Infinity
		}
		if cand >= cur {
			continue
		}

		r.dist[e.To] = cand
		r.prev[e.To] = u
		heap.Push(&r.pq, item{id: e.To, dist: cand})
	}
}

// addDist returns d+w, saturating at Infinity.
func addDist(d, w int64) int64 {
	if w > 0 && d > Infinity-w {
		return Infinity
	}

	return d + w
}

// item is a frontier entry: a node and the distance it was pushed with.
type item struct {
	id   string
	dist int64
}

// frontier is a min-heap of items ordered by (dist, id) ascending.
type frontier []item

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an item.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(item)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
