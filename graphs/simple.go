package graphs

import "github.com/katalvlaran/polygraph/core"

// SimpleGraph forbids self-loops and parallel edges: at most one edge per
// vertex pair, endpoints always distinct. Defaults to the set-backed
// adjacency list; the dense matrix and the list-backed strategy are also
// accepted (policy still holds under any of them).
type SimpleGraph struct {
	base
}

// NewSimpleGraph constructs an empty simple graph.
// Fails with ErrStrategyNotSupported for a strategy outside
// {ListSimple, Matrix, ListMulti}.
func NewSimpleGraph(opts ...GraphOption) (*SimpleGraph, error) {
	b, err := newBase(
		core.ListSimple,
		[]core.StrategyKind{core.ListSimple, core.Matrix, core.ListMulti},
		edgePolicy{AllowLoops: false, AllowParallel: false},
		opts,
	)
	if err != nil {
		return nil, err
	}

	return &SimpleGraph{base: b}, nil
}
