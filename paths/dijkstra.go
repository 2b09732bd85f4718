package paths

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/polygraph/graphs"
)

// heapItem is one priority-queue entry: a vertex, its candidate distance,
// and the push sequence number breaking distance ties in insertion order,
// which keeps the settle order deterministic for a given topology.
type heapItem struct {
	id   string
	dist float64
	seq  uint64
}

// byDistThenSeq orders heap items by ascending distance, then insertion.
func byDistThenSeq(a, b interface{}) int {
	ia, ib := a.(*heapItem), b.(*heapItem)
	switch {
	case ia.dist < ib.dist:
		return -1
	case ia.dist > ib.dist:
		return 1
	case ia.seq < ib.seq:
		return -1
	case ia.seq > ib.seq:
		return 1
	default:
		return 0
	}
}

// Dijkstra computes single-source shortest distances on a graph with
// non-negative weights. An upfront O(E) scan rejects negative weights with
// ErrNegativeWeight before any relaxation work. Relaxation walks every
// parallel edge between a pair, so the lightest parallel wins; unreachable
// vertices are simply absent from the Result.
//
// The priority queue uses lazy decrease-key: improved distances push fresh
// entries and stale ones are skipped when popped.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g graphs.Graph, source string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%g", ErrNegativeWeight, e.Source, e.Target, e.Weight)
		}
	}

	res := &Result{
		Source: source,
		Dist:   make(map[string]float64, g.VertexCount()),
		Prev:   make(map[string]string, g.VertexCount()),
	}
	settled := make(map[string]bool, g.VertexCount())
	pq := binaryheap.NewWith(byDistThenSeq)

	var seq uint64
	push := func(id string, dist float64) {
		pq.Push(&heapItem{id: id, dist: dist, seq: seq})
		seq++
	}

	res.Dist[source] = 0
	push(source, 0)

	for !pq.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		raw, _ := pq.Pop()
		item := raw.(*heapItem)
		u := item.id
		if settled[u] {
			continue // stale lazy-decrease-key entry
		}
		if item.dist > o.MaxDistance {
			// Min-heap: everything still queued is at least this far.
			break
		}
		settled[u] = true

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("paths: neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			if settled[v] {
				continue
			}
			// Every parallel edge is considered; the lightest one wins.
			for _, e := range g.EdgesBetween(u, v) {
				cand := res.Dist[u] + e.Weight
				if best, seen := res.Dist[v]; seen && cand >= best {
					continue
				}
				res.Dist[v] = cand
				res.Prev[v] = u
				push(v, cand)
			}
		}
	}

	// Drop improvement entries of vertices that were never settled within
	// the distance cap.
	for v := range res.Dist {
		if !settled[v] {
			delete(res.Dist, v)
			delete(res.Prev, v)
		}
	}

	return res, nil
}
