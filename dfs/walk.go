package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/polygraph/graphs"
)

// Walk returns a lazy depth-first sequence of (vertex ID, depth) pairs in
// discovery (preorder) order, starting from startID. The sequence is
// restartable: every range statement re-runs the traversal from scratch.
// Breaking out of the range stops the traversal immediately.
//
// Input validation happens up front (same errors as DFS). MaxDepth and
// FilterNeighbor apply; context cancellation ends the sequence early since a
// sequence cannot fail. OnExit does not fire from Walk.
//
// Complexity per consumed run: O(V + E) time, O(V) space.
func Walk(g graphs.Graph, startID string, opts ...Option) (iter.Seq2[string, int], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	seq := func(yield func(string, int) bool) {
		visited := map[string]bool{}
		var stack []frame

		discover := func(id string, depth int) bool {
			visited[id] = true
			if !yield(id, depth) {
				return false
			}
			nbrs, err := g.Neighbors(id)
			if err != nil {
				return false
			}
			stack = append(stack, frame{id: id, depth: depth, nbrs: nbrs})

			return true
		}

		if !discover(startID, 0) {
			return
		}
		for len(stack) > 0 {
			select {
			case <-o.Ctx.Done():
				return
			default:
			}
			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				stack = stack[:len(stack)-1]

				continue
			}
			nbr := top.nbrs[top.next]
			top.next++
			if visited[nbr] || !o.FilterNeighbor(top.id, nbr) {
				continue
			}
			nextDepth := top.depth + 1
			if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
				continue
			}
			if !discover(nbr, nextDepth) {
				return
			}
		}
	}

	return seq, nil
}
