// Package dijkstra defines result types, sentinel errors and configuration
// options for Dijkstra's shortest-path algorithm over a core.Graph.
//
// Options:
//
//	– WithWeightCheck():         O(E) pre-scan rejecting negative weights.
//	– WithMaxDistance(d):        nodes farther than d are never relaxed.
//	– WithInfEdgeThreshold(t):   edges with weight ≥ t are impassable.
//	– WithOnSettle(fn):          hook invoked once per finalized node.
//
// Errors (sentinel):
//
//	– ErrNegativeWeight   if WithWeightCheck is set and an edge weight is < 0.
//	– ErrOptionViolation  if an option received an invalid argument.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance recorded for nodes with no finite path from the
// start node. It is distinct from every legitimate computed distance.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected
	// during the optional pre-scan.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an Option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Distances maps a node ID to its shortest known distance from the start.
// Unreachable nodes that are top-level graph keys hold Infinity; nodes never
// discovered have no entry.
type Distances map[string]int64

// Reachable reports whether id has a finite distance.
func (d Distances) Reachable(id string) bool {
	v, ok := d[id]

	return ok && v != Infinity
}

// Predecessors maps a node ID to the node directly preceding it on a
// shortest path from the start. The start node and unreachable nodes have no
// entry.
type Predecessors map[string]string

// Options configures the behavior of Dijkstra.
type Options struct {
	// CheckWeights enables the negative-weight pre-scan.
	CheckWeights bool

	// MaxDistance caps exploration: a node whose distance would exceed it is
	// not relaxed. Default Infinity (no cap).
	MaxDistance int64

	// InfEdgeThreshold marks edges with weight ≥ threshold as impassable.
	// Default Infinity (no edge is impassable).
	InfEdgeThreshold int64

	// OnSettle is called once for each node when its distance becomes final.
	OnSettle func(id string, dist int64)

	// err records the first invalid option.
	err error
}

// Option configures Dijkstra via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Dijkstra is invoked.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no impassable
// edges, no weight pre-scan and a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		OnSettle:         func(string, int64) {},
	}
}

// WithWeightCheck enables an O(E) pre-scan that fails with
// ErrNegativeWeight before any relaxation happens.
func WithWeightCheck() Option {
	return func(o *Options) {
		o.CheckWeights = true
	}
}

// WithMaxDistance stops relaxation beyond d. Nodes whose shortest distance
// exceeds d keep Infinity (or stay undiscovered).
//
//	d ≥ 0: cap distances at d
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			o.setErr(fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d))
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ t as a wall.
//
//	t > 0:  skip edges with weight ≥ t
//	t ≤ 0:  invalid option → ErrOptionViolation
func WithInfEdgeThreshold(t int64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.setErr(fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, t))
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithOnSettle registers a hook invoked when a node's distance is final,
// in non-decreasing distance order. A nil fn is ignored.
func WithOnSettle(fn func(id string, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// setErr keeps the first recorded option error.
func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
