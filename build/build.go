// Package build assembles deterministic graph fixtures from composable
// topology constructors: paths, cycles, stars, wheels, complete and
// bipartite graphs, grids, and seeded random graphs.
//
// Constructors mutate any graph type through the shared mutation surface, so
// the same topology can be laid onto a SimpleGraph, Multigraph, or
// Pseudograph. Same inputs, options, and seed always produce the identical
// graph.
package build

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/polygraph/graphs"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices reports an n below the topology's minimum.
	ErrTooFewVertices = errors.New("build: too few vertices")

	// ErrInvalidProbability reports a p outside [0, 1].
	ErrInvalidProbability = errors.New("build: probability outside [0,1]")

	// ErrRandRequired reports a stochastic constructor running without a
	// seeded source (use WithSeed or WithRand).
	ErrRandRequired = errors.New("build: random source required")

	// ErrConstructFailed reports a nil or failing constructor.
	ErrConstructFailed = errors.New("build: construction failed")
)

// Target is the mutation surface constructors write through. Every binary
// graph type satisfies it.
type Target interface {
	Directed() bool
	AddVertex(id string, opts ...graphs.VertexOption) error
	AddEdge(source, target string, opts ...graphs.EdgeOption) error
}

// Constructor applies one deterministic topology to the target. Constructors
// validate parameters before mutating and return sentinel errors; the same
// config and call order always yield the same graph.
type Constructor func(g Target, cfg config) error

// Option customizes fixture construction.
type Option func(*config)

type config struct {
	idFn        func(int) string
	weightFn    func(*rand.Rand) float64
	rng         *rand.Rand
	leftPrefix  string
	rightPrefix string
}

func newConfig(opts []Option) config {
	cfg := config{
		idFn:        func(i int) string { return "v" + strconv.Itoa(i) },
		leftPrefix:  "L",
		rightPrefix: "R",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator, index to identifier.
// The default is "v0", "v1", ...
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) { c.idFn = fn }
}

// WithSeed attaches a deterministic random source for stochastic
// constructors and randomized weights.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit random source. Prefer WithSeed for
// reproducible fixtures.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithWeightFn sets the per-edge weight generator. Without it, edges carry
// the default weight.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	return func(c *config) { c.weightFn = fn }
}

// WithPartitionPrefix sets the bipartite side labels (defaults "L" and "R").
func WithPartitionPrefix(left, right string) Option {
	return func(c *config) { c.leftPrefix, c.rightPrefix = left, right }
}

// Simple constructs a fresh undirected SimpleGraph and applies the
// constructors in order. The first failure aborts with context; no partial
// cleanup is attempted.
func Simple(gopts []graphs.GraphOption, bopts []Option, cons ...Constructor) (*graphs.SimpleGraph, error) {
	g, err := graphs.NewSimpleGraph(gopts...)
	if err != nil {
		return nil, err
	}
	if err = Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply resolves the options once and runs the constructors in order against
// an existing graph.
func Apply(g Target, bopts []Option, cons ...Constructor) error {
	cfg := newConfig(bopts)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}

	return nil
}

// addEdge emits one edge honoring the configured weight policy.
func (c config) addEdge(g Target, u, v string) error {
	if c.weightFn == nil {
		return g.AddEdge(u, v)
	}

	return g.AddEdge(u, v, graphs.WithWeight(c.weightFn(c.rng)))
}
