// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_sample.go - the six-node demonstration graph.
//
//	A→B 7   A→C 9   A→F 14
//	B→C 10  B→D 15
//	C→D 11  C→F 2
//	D→E 6
//	E→F 8
//	F→E 9
//
// Shortest distances from A: A0 B7 C9 D20 E20 F11 (E via A→C→F→E).

package builder

import "github.com/katalvlaran/lvpath/core"

const methodSample = "Sample"

// sampleEdges lists the demonstration arcs in a stable order.
var sampleEdges = []core.Edge{
	{From: "A", To: "B", Weight: 7},
	{From: "A", To: "C", Weight: 9},
	{From: "A", To: "F", Weight: 14},
	{From: "B", To: "C", Weight: 10},
	{From: "B", To: "D", Weight: 15},
	{From: "C", To: "D", Weight: 11},
	{From: "C", To: "F", Weight: 2},
	{From: "D", To: "E", Weight: 6},
	{From: "E", To: "F", Weight: 8},
	{From: "F", To: "E", Weight: 9},
}

// Sample returns a Constructor that adds the demonstration graph. Weights
// are fixed; the configured WeightFn is ignored.
func Sample() Constructor {
	return func(g core.Graph, _ builderConfig) error {
		for _, e := range sampleEdges {
			if err := addEdge(methodSample, g, e.From, e.To, e.Weight); err != nil {
				return err
			}
		}

		return nil
	}
}

// SampleGraph is shorthand for BuildGraph(nil, Sample()); it cannot fail.
func SampleGraph() core.Graph {
	g := core.NewGraph()
	_ = Sample()(g, newBuilderConfig())

	return g
}
