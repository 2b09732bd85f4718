package mst

import (
	"sort"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/graphs"
)

// unionFind is a disjoint-set forest with path compression and union by rank.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}

	return uf
}

// find walks to the root, compressing the path by grandparent hops.
func (uf *unionFind) find(u string) string {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v, returning false when already joined.
func (uf *unionFind) union(u, v string) bool {
	rootU, rootV := uf.find(u), uf.find(v)
	if rootU == rootV {
		return false
	}
	if uf.rank[rootU] < uf.rank[rootV] {
		rootU, rootV = rootV, rootU
	}
	uf.parent[rootV] = rootU
	if uf.rank[rootU] == uf.rank[rootV] {
		uf.rank[rootU]++
	}

	return true
}

// Kruskal computes a minimum spanning forest by scanning edges in ascending
// (weight, source, target) order and joining components through union-find.
//
// Complexity: O(E log E) time, O(V + E) space.
func Kruskal(g graphs.Graph) (*Result, error) {
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

	edges := make([]*core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.Source == e.Target {
			continue // loops never span
		}
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}

		return edges[i].Target < edges[j].Target
	})

	uf := newUnionFind(ids)
	res := &Result{Edges: make([]core.Edge, 0, len(ids)-1)}
	accepted := 0
	for _, e := range edges {
		if !uf.union(e.Source, e.Target) {
			continue
		}
		res.Edges = append(res.Edges, *e)
		res.Weight += e.Weight
		accepted++
		if accepted == len(ids)-1 {
			break
		}
	}
	res.Components = len(ids) - accepted

	return res, nil
}
