// Package core defines the weighted directed Graph consumed by every
// algorithm package in lvpath.
//
// A Graph is a plain adjacency mapping:
//
//	Graph{
//	    "A": {"B": 7, "C": 9},
//	    "B": {"C": 10},
//	}
//
// The outer key is the source vertex, the inner key the target vertex and the
// value the edge weight. An edge u→v exists only in u's inner map; there is no
// implicit symmetry.
//
// Vertices vs. nodes:
//
//   - Vertices() returns only the top-level keys (vertices that own an
//     adjacency entry, possibly empty).
//   - Nodes() returns every identifier mentioned anywhere: top-level keys plus
//     edge targets. A target that never appears as a key is a node with no
//     outgoing edges.
//
// Determinism:
//
//   - Vertices(), Nodes(), Neighbors() and Edges() return sorted results so
//     algorithms iterate in a stable order regardless of Go map ordering.
//
// Weights:
//
//   - Weights are int64 and must be non-negative for shortest-path algorithms.
//     The graph itself does not reject negative weights on insertion;
//     Validate() reports them with ErrNegativeWeight.
//
// Concurrency:
//
//   - Graph is a map and carries no lock. Concurrent reads are safe; any
//     mutation must be synchronized by the caller. Algorithms never mutate the
//     graph they are given.
//
// Complexity:
//
//	AddVertex / AddEdge / HasEdge / Weight   O(1)
//	Neighbors(id)                            O(d log d)
//	Vertices()                               O(V log V)
//	Nodes() / Edges()                        O((V+E) log(V+E))
//	Clone() / Validate()                     O(V+E)
package core
