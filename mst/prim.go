package mst

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/graphs"
)

// candidate is a frontier edge under consideration by Prim.
type candidate struct {
	source string
	target string
	weight float64
}

// byWeightThenEndpoints gives Prim the same deterministic tie-break as
// Kruskal's edge sort.
func byWeightThenEndpoints(a, b interface{}) int {
	ca, cb := a.(*candidate), b.(*candidate)
	switch {
	case ca.weight < cb.weight:
		return -1
	case ca.weight > cb.weight:
		return 1
	case ca.source != cb.source:
		if ca.source < cb.source {
			return -1
		}

		return 1
	case ca.target != cb.target:
		if ca.target < cb.target {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// Prim computes a minimum spanning forest by growing one tree per component
// from its smallest vertex ID, always accepting the cheapest frontier edge
// from a binary min-heap.
//
// Complexity: O(E log E) time, O(V + E) space.
func Prim(g graphs.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	ids := g.VertexIDs()
	if len(ids) == 0 {
		return &Result{}, nil
	}

	visited := make(map[string]bool, len(ids))
	res := &Result{Edges: make([]core.Edge, 0, len(ids)-1)}

	for _, root := range ids {
		if visited[root] {
			continue
		}
		res.Components++
		if err := growTree(g, root, visited, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// growTree runs one Prim expansion from root, appending accepted edges.
func growTree(g graphs.Graph, root string, visited map[string]bool, res *Result) error {
	pq := binaryheap.NewWith(byWeightThenEndpoints)
	if err := visit(g, root, visited, pq); err != nil {
		return err
	}
	for !pq.Empty() {
		raw, _ := pq.Pop()
		c := raw.(*candidate)
		if visited[c.target] {
			continue // both endpoints already in the tree
		}
		res.Edges = append(res.Edges, core.Edge{Source: c.source, Target: c.target, Weight: c.weight})
		res.Weight += c.weight
		if err := visit(g, c.target, visited, pq); err != nil {
			return err
		}
	}

	return nil
}

// visit marks id as in-tree and pushes its frontier edges, every parallel
// included so the lightest can win, loops excluded.
func visit(g graphs.Graph, id string, visited map[string]bool, pq *binaryheap.Heap) error {
	visited[id] = true
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("mst: neighbors of %q: %w", id, err)
	}
	for _, v := range nbrs {
		if visited[v] || v == id {
			continue
		}
		for _, e := range g.EdgesBetween(id, v) {
			pq.Push(&candidate{source: id, target: v, weight: e.Weight})
		}
	}

	return nil
}
