// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-hop distances, parent links, and visit order.
//
// Edges are followed in their direction only; edge weights are ignored.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
//
// A start vertex absent from g is visited alone (depth 0, no neighbors),
// mirroring dijkstra's isolated-start semantics. Returns ErrEmptyStart,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if startID == "" {
		return nil, ErrEmptyStart
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(g) + 1
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the set of nodes reachable from start, start included.
func Reachable(g core.Graph, start string) map[string]bool {
	res, err := BFS(g, start)
	if err != nil {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(res.Order))
	for _, id := range res.Order {
		out[id] = true
	}

	return out
}

// enqueue marks id visited at depth d, records its parent and adds it to
// the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in target-ID order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		if !w.visited[e.To] {
			w.enqueue(e.To, next, item.id)
		}
	}
}
