// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - PathTo(dest) rebuilds a fewest-hop path via route.Reconstruct.
//   - Reachable(g, start) returns the reachable node set.
//
// Why
//
//   - Weight-agnostic reachability: a node is reachable by Dijkstra exactly
//     when BFS visits it (absent distance caps and impassable edges).
//   - Fewest-hop routes complement cheapest routes in the lvpath CLI.
//
// Semantics
//
//   - Edges are followed From→To only.
//   - Target-only nodes are visited and have no outgoing edges.
//   - An unknown start is visited alone; it is not an error.
//
// Determinism
//
//	core.Graph.Neighbors returns targets sorted lex asc, so visit order and
//	parent choice are reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E log d)  (neighbor sorting per node)
//   - Memory: O(V)
package bfs
