// SPDX-License-Identifier: MIT
// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks, examples and the command-line driver.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.Option{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.Grid(4, 4),
//	)
//
// Constructors:
//
//	Sample()            the six-node A..F demonstration graph (fixed weights)
//	Path(n)             v0→v1→…→v(n-1)
//	Cycle(n)            Path(n) plus v(n-1)→v0
//	Grid(rows, cols)    "r,c" cells with arcs to orthogonal neighbors both ways
//	RandomSparse(n, p)  every ordered pair (i≠j) kept with probability p
//
// Determinism:
//
//   - Same options, same seed and same constructor order produce identical graphs.
//   - Vertex IDs come from the configured prefix plus the index ("v0", "v1", …),
//     except Sample and Grid, which use fixed schemes.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrConstructFailed; all
//     wrapped with the constructor name, test with errors.Is.
package builder
