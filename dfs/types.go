package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/polygraph/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	// It wraps core.ErrVertexNotFound so callers can match either kind.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrVertexNotFound)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrCycleDetected indicates a cycle encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrUndirectedGraph indicates TopologicalSort was given an undirected
	// graph; orderings only exist for directed acyclic graphs.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")
)

// Option configures DFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation on invocation.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is invoked on vertex discovery (preorder). Returning an error
	// aborts the traversal with that error.
	OnVisit func(id string, depth int) error

	// OnExit is invoked after a vertex's descendants are fully explored
	// (postorder). Returning an error aborts the traversal.
	OnExit func(id string) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// FullTraversal restarts the search from every unvisited vertex in ID
	// order, covering disconnected components (forest traversal).
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: Background context,
// no hooks, no depth limit, no filtering, single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
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

// WithOnVisit installs fn as the preorder hook, called on discovery.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as the postorder hook, called once a vertex's
// descendants are fully explored.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFullTraversal restarts DFS from every unvisited vertex in ID order,
// covering disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order: vertices in discovery (preorder) sequence.
//   - Depth: map from vertex ID to its discovery depth from its tree root.
//   - Parent: map from vertex ID to its predecessor in the DFS forest.
//
// Only reached vertices appear; tree roots have no Parent entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the discovery path from the tree root to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("dfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
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
