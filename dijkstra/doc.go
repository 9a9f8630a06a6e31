// Package dijkstra provides single-source shortest paths over a weighted,
// directed core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPaths(g, start) returns a Distances map and a Predecessors map.
//   - Distances[v] is the minimal total weight of any directed path start→v,
//     or Infinity when no such path exists.
//   - Predecessors[v] is the node immediately before v on one shortest path;
//     feed it to route.Reconstruct to obtain the full path.
//   - Dijkstra(g, start, opts...) is the same computation with options for
//     weight validation, distance caps, impassable edges and a settle hook.
//
// Semantics worth knowing:
//
//   - An unknown start is not an error: it is an isolated node at distance 0.
//   - Every top-level key of g receives a Distances entry (Infinity if
//     unreachable). A node that is only ever an edge target receives an entry
//     when it is first discovered and is treated as having no outgoing edges.
//   - Predecessors never contains the start node or an unreachable node.
//   - With several equal-cost shortest paths, the predecessor chosen follows
//     relaxation order; Distances are identical across runs.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once; stale frontier entries are skipped.
//   - Each successful relaxation pushes one frontier entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the result maps, O(E) worst-case frontier under lazy deletion.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeWeight:
//     Returned by Dijkstra with WithWeightCheck when any edge is negative.
//   - ErrOptionViolation:
//     Returned by Dijkstra when WithMaxDistance(<0) or
//     WithInfEdgeThreshold(≤0) was supplied.
//
// ShortestPaths itself never fails.
//
// Thread safety:
//
//   - No package-level state. Each call owns its frontier and result maps.
//   - Concurrent calls on the same graph are safe as long as nobody mutates
//     the graph meanwhile.
//
// Example:
//
//	dist, prev := dijkstra.ShortestPaths(g, "A")
//	if dist.Reachable("D") {
//	    fmt.Println(dist["D"], route.Reconstruct(prev, "A", "D"))
//	}
package dijkstra
