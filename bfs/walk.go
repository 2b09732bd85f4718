package bfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/polygraph/graphs"
)

// Walk returns a lazy breadth-first sequence of (vertex ID, depth) pairs
// starting from startID. The sequence is restartable: every range statement
// re-runs the traversal from scratch, so it can be consumed any number of
// times. Breaking out of the range stops the underlying traversal
// immediately; no work happens past the last yielded vertex.
//
// Input validation happens up front (same errors as BFS). MaxDepth and
// FilterNeighbor options apply; hooks and context cancellation apply per run,
// with cancellation ending the sequence early since a sequence cannot fail.
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
		visited := map[string]bool{startID: true}
		queue := []queueItem{{id: startID}}
		o.OnEnqueue(startID, 0)
		for len(queue) > 0 {
			select {
			case <-o.Ctx.Done():
				return
			default:
			}
			item := queue[0]
			queue = queue[1:]
			o.OnDequeue(item.id, item.depth)
			if !yield(item.id, item.depth) {
				return
			}
			neighbors, err := g.Neighbors(item.id)
			if err != nil {
				return
			}
			for _, nbr := range neighbors {
				if visited[nbr] || !o.FilterNeighbor(item.id, nbr) {
					continue
				}
				nextDepth := item.depth + 1
				if o.MaxDepth > 0 && nextDepth > o.MaxDepth {
					continue
				}
				visited[nbr] = true
				o.OnEnqueue(nbr, nextDepth)
				queue = append(queue, queueItem{id: nbr, depth: nextDepth, parent: item.id})
			}
		}
	}

	return seq, nil
}
