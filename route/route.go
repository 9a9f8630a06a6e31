// Package route turns a predecessor relation into explicit paths and
// measures or renders them.
//
// route depends only on the shape of a predecessor map
// (map[string]string), so it works with dijkstra.Predecessors, bfs parent
// maps, or any hand-built relation.
package route

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// Separator joins path nodes in Format.
const Separator = " -> "

var (
	// ErrEmptyPath indicates that an operation requires at least one node.
	ErrEmptyPath = errors.New("route: path is empty")

	// ErrMissingEdge indicates that two consecutive path nodes are not
	// joined by an edge in the graph.
	ErrMissingEdge = errors.New("route: path uses a missing edge")
)

// Reconstruct walks prev backwards from target to start and returns the
// nodes in start→target order, both inclusive.
//
// If start == target the result is [start]. If some node on the way has no
// predecessor, target is unreachable and Reconstruct returns nil.
//
// A predecessor relation produced by a shortest-path run is acyclic; a
// hand-built cyclic relation that never reaches start also yields nil.
//
// Complexity: O(L) where L is the path length.
func Reconstruct(prev map[string]string, start, target string) []string {
	var path []string
	for cur := target; cur != start; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev) {
			return nil
		}
		path = append(path, cur)
		cur = p
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Cost sums the edge weights along path in g. A single-node path costs 0.
// The sum saturates at math.MaxInt64 instead of wrapping.
func Cost(g core.Graph, path []string) (int64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s at hop %d", ErrMissingEdge, path[i-1], path[i], i)
		}
		total = addSat(total, w)
	}

	return total, nil
}

// addSat returns a+b clamped to math.MaxInt64 for non-negative b.
func addSat(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}

	return a + b
}

// Format renders path as "A -> C -> D". An empty path renders as "".
func Format(path []string) string {
	return strings.Join(path, Separator)
}
