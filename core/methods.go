// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle, queries, cloning and validation.
// Determinism:
//   - Vertices(), Nodes(), Neighbors(), Edges() are sorted lex asc.
//   - Edges() is sorted by (From, To).

package core

import (
	"fmt"
	"sort"
)

// AddVertex ensures id has an adjacency entry. Adding an existing vertex is a
// no-op and keeps its edges.
func (g Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g == nil {
		return ErrNilGraph
	}
	if _, ok := g[id]; !ok {
		g[id] = make(map[string]int64)
	}

	return nil
}

// AddEdge stores the directed edge from→to with the given weight, replacing
// any previous weight for that pair.
//
// Only from receives an adjacency entry; to stays a target-only node until it
// is added explicitly with AddVertex or gains outgoing edges of its own.
func (g Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	g[from][to] = weight

	return nil
}

// HasVertex reports whether id is a top-level key of the graph.
func (g Graph) HasVertex(id string) bool {
	_, ok := g[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
func (g Graph) Weight(from, to string) (int64, bool) {
	nbrs, ok := g[from]
	if !ok {
		return 0, false
	}
	w, ok := nbrs[to]

	return w, ok
}

// Vertices returns the top-level keys sorted lex asc.
func (g Graph) Vertices() []string {
	out := make([]string, 0, len(g))
	for id := range g {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Nodes returns every identifier mentioned by the graph, keys and edge
// targets alike, sorted lex asc.
func (g Graph) Nodes() []string {
	seen := make(map[string]struct{}, len(g))
	for from, nbrs := range g {
		seen[from] = struct{}{}
		for to := range nbrs {
			seen[to] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the outgoing edges of id sorted by target ID.
// Unknown vertices and target-only nodes have no neighbors.
func (g Graph) Neighbors(id string) []Edge {
	nbrs := g[id]
	out := make([]Edge, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Edges returns all edges sorted by (From, To).
func (g Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for _, from := range g.Vertices() {
		out = append(out, g.Neighbors(from)...)
	}

	return out
}

// EdgeCount returns the number of directed edges.
func (g Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range g {
		n += len(nbrs)
	}

	return n
}

// Clone returns a deep copy; mutating the clone never affects g.
func (g Graph) Clone() Graph {
	if g == nil {
		return nil
	}
	out := make(Graph, len(g))
	for from, nbrs := range g {
		cp := make(map[string]int64, len(nbrs))
		for to, w := range nbrs {
			cp[to] = w
		}
		out[from] = cp
	}

	return out
}

// Validate checks that every identifier is non-empty and every weight is
// non-negative. The first violation in Edges() order is reported.
func (g Graph) Validate() error {
	for _, from := range g.Vertices() {
		if from == "" {
			return ErrEmptyVertexID
		}
		for _, e := range g.Neighbors(from) {
			if e.To == "" {
				return fmt.Errorf("%w: edge from %q has empty target", ErrEmptyVertexID, e.From)
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	return nil
}
