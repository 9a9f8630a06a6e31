// Package graphio reads and writes weighted directed graphs as documents.
//
// A Document carries a graph either as an adjacency mapping, as an edge
// list, or both (the edge list is applied after the mapping), plus optional
// start and target node IDs for a query.
//
// Supported encodings:
//
//	.json            JSON
//	.yaml, .yml      YAML
//	.msgpack, .mpk   MessagePack
//
// Any of them may carry a trailing ".zst" suffix, in which case the payload
// is zstd-compressed.
//
// Every decoded document is validated: struct rules (required IDs, non-negative
// edge-list weights) and core.Graph.Validate on the adjacency mapping.
//
// Example (YAML):
//
//	name: sample
//	start: A
//	target: D
//	graph:
//	  A: {B: 7, C: 9}
//	edges:
//	  - {from: C, to: D, weight: 11}
package graphio
