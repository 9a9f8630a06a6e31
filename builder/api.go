// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go - public entry point, configuration and sentinel errors.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Options resolve into a builderConfig passed by value (no global state).
//   - Constructors never panic; option constructors panic on meaningless input.

package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Deterministic defaults.
const (
	// DefaultSeed seeds the RNG when WithSeed is not given.
	DefaultSeed int64 = 1

	// DefaultIDPrefix prefixes index-based vertex IDs.
	DefaultIDPrefix = "v"
)

// Constructor applies a deterministic mutation to g using cfg.
type Constructor func(g core.Graph, cfg builderConfig) error

// Option customizes the builder configuration.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig returns the deterministic defaults with opts applied in
// order (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     prefixedID(DefaultIDPrefix),
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed replaces the RNG with one seeded by seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithIDPrefix sets the prefix of index-based vertex IDs. Panics on "".
func WithIDPrefix(prefix string) Option {
	if prefix == "" {
		panic("builder: WithIDPrefix(\"\")")
	}

	return func(c *builderConfig) {
		c.idFn = prefixedID(prefix)
	}
}

// prefixedID renders index i as prefix+decimal.
func prefixedID(prefix string) func(int) string {
	return func(i int) string {
		return prefix + strconv.Itoa(i)
	}
}

// BuildGraph creates an empty graph, resolves the configuration from opts
// and applies cons in order. The first failing constructor aborts the build
// and its error is returned wrapped as "BuildGraph: %w".
func BuildGraph(opts []Option, cons ...Constructor) (core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge wraps core.Graph.AddEdge with method context.
func addEdge(method string, g core.Graph, u, v string, w int64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}

// addVertex wraps core.Graph.AddVertex with method context.
func addVertex(method string, g core.Graph, id string) error {
	if err := g.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %v: %w", method, id, err, ErrConstructFailed)
	}

	return nil
}
