package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polygraph/graphs"
)

// Vertex visitation states for cycle detection.
const (
	white = iota // not visited
	gray         // on the current path
	black        // fully explored
)

// TopoOption configures TopologicalSort; currently cancellation only.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for TopologicalSort.
// A nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter holds sort state: the gray/black coloring and the postorder.
type topoSorter struct {
	graph graphs.Graph
	ctx   context.Context
	state map[string]int
	order []string
}

// TopologicalSort computes a linear vertex ordering of a directed graph such
// that for every edge u→v, u precedes v. Roots are taken in ID order, so the
// ordering is deterministic for a given topology.
//
// Returns ErrGraphNil for a nil graph, ErrUndirectedGraph for an undirected
// one, and ErrCycleDetected when no ordering exists.
//
// Complexity: O(V + E) time, O(V) space.
func TopologicalSort(g graphs.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	ids := g.VertexIDs()
	sorter := &topoSorter{
		graph: g,
		ctx:   opts.ctx,
		state: make(map[string]int, len(ids)),
		order: make([]string, 0, len(ids)),
	}
	for _, v := range ids {
		if sorter.state[v] == white {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// Reverse postorder is the topological order.
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit explores id depth-first, using the gray state to detect back edges.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case gray:
		return fmt.Errorf("%w: at %q", ErrCycleDetected, id)
	case black:
		return nil
	}
	t.state[id] = gray

	nbrs, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range nbrs {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
