// Package lvpath computes single-source shortest paths over weighted
// directed graphs with non-negative integer weights.
//
// The module is organized as:
//
//	core/          Graph (adjacency map), Edge, validation and sorted queries
//	dijkstra/      ShortestPaths and the option-driven Dijkstra
//	route/         path reconstruction, cost and formatting
//	bfs/           fewest-hop traversal and reachability
//	builder/       deterministic graph fixtures (sample, path, cycle, grid, random)
//	graphio/       JSON / YAML / MessagePack documents, optional zstd
//	cmd/lvpath     command-line driver
//
// Quick example:
//
//	g := core.Graph{
//		"A": {"B": 7, "C": 9},
//		"C": {"D": 11},
//	}
//	dist, prev := dijkstra.ShortestPaths(g, "A")
//	path := route.Reconstruct(prev, "A", "D") // [A C D]
//	_ = dist["D"]                            // 20
//
// Nodes that cannot be reached keep dijkstra.Infinity (or are absent when
// they never appear as a top-level key); route.Reconstruct returns nil for
// them.
package lvpath
