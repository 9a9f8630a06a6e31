// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/route"
)

// ExampleShortestPaths runs the classic six-node sample from A.
func ExampleShortestPaths() {
	g := builder.SampleGraph()
	dist, prev := dijkstra.ShortestPaths(g, "A")

	parts := make([]string, 0, len(g))
	for _, v := range g.Vertices() {
		parts = append(parts, fmt.Sprintf("%s=%d", v, dist[v]))
	}
	fmt.Println(strings.Join(parts, " "))
	fmt.Println(route.Format(route.Reconstruct(prev, "A", "D")))
	// Output:
	// A=0 B=7 C=9 D=20 E=20 F=11
	// A -> C -> D
}

// ExampleShortestPaths_unreachable shows how callers tell "unreachable"
// apart from a zero-length path: by the Infinity sentinel, not by absence.
func ExampleShortestPaths_unreachable() {
	g := core.Graph{
		"A": {"B": 1},
		"C": {},
	}
	dist, prev := dijkstra.ShortestPaths(g, "A")

	fmt.Println(dist["C"] == dijkstra.Infinity, dist.Reachable("C"))
	fmt.Println(len(route.Reconstruct(prev, "A", "C")))
	// Output:
	// true false
	// 0
}

// ExampleDijkstra_thresholds shows a wall (InfEdgeThreshold) forcing a detour.
func ExampleDijkstra_thresholds() {
	g := core.Graph{
		"A": {"B": 2, "C": 10},
		"B": {"C": 4},
	}
	dist, _, err := dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[C]=%d\n", dist["C"])
	// Output: dist[C]=6
}
