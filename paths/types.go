package paths

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/polygraph/core"
)

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	// It wraps core.ErrVertexNotFound so callers can match either kind.
	ErrSourceNotFound = fmt.Errorf("paths: source vertex not found: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight indicates a negative edge weight given to Dijkstra.
	// Detected by an upfront O(E) scan before any relaxation work.
	ErrNegativeWeight = errors.New("paths: negative edge weight")

	// ErrNegativeCycle indicates Bellman-Ford found a cycle whose total
	// weight is negative, making shortest distances undefined. The wrapped
	// message names the cycle's vertices when they could be extracted.
	ErrNegativeCycle = errors.New("paths: negative cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("paths: invalid option supplied")

	// ErrNoPath is returned by PathTo for an unreached destination.
	ErrNoPath = errors.New("paths: destination not reachable")
)

// Option configures shortest-path behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation on invocation.
type Option func(*Options)

// Options holds parameters customizing a shortest-path run.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per settled vertex
	// (Dijkstra) or relaxation round (Bellman-Ford).
	Ctx context.Context

	// MaxDistance caps exploration: vertices whose settled distance would
	// exceed it stay unreached. Dijkstra only. Default +Inf.
	MaxDistance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Background context and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps the distance Dijkstra explores to.
// A negative cap is an invalid option → ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%g)", ErrOptionViolation, max)

			return
		}
		o.MaxDistance = max
	}
}

// Result holds single-source shortest-path distances and predecessor links.
// Dist contains exactly the reached vertices; an unreachable vertex is
// absent (no infinity placeholders). The source has distance 0 and no Prev
// entry.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// PathTo reconstructs the shortest path from the source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
