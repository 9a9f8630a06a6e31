// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the NewGraph constructor.
// Policy:
//   - Graph is a named adjacency map; the zero value (nil) is a valid empty
//     graph for all read operations.
//   - Mutators require a non-nil Graph (use NewGraph or a map literal).

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex identifier is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates that an edge carries a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNilGraph indicates a mutation was attempted on a nil Graph.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Graph is a weighted directed graph stored as an adjacency mapping:
// Graph[from][to] = weight.
type Graph map[string]map[string]int64

// Edge is a single directed, weighted arc From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost of the edge.
	Weight int64
}

// NewGraph returns an empty, ready to mutate Graph.
func NewGraph() Graph {
	return make(Graph)
}
