package graphs

import (
	"fmt"

	"github.com/katalvlaran/polygraph/core"
)

// Bipartite projection vertex prefixes: original vertices keep their ID
// behind "v:", hyperedges appear as "h:" + hyperedge ID.
const (
	BipartiteVertexPrefix    = "v:"
	BipartiteHyperedgePrefix = "h:"
)

// Hypergraph connects arbitrary nonempty vertex sets through hyperedges.
// Always undirected, always backed by the incidence map. Binary AddEdge
// calls store two-member hyperedges, so the shared traversal and path
// surfaces work over the clique view of the hyperedges.
type Hypergraph struct {
	base
	inc *core.HypergraphIncidenceMap
}

// NewHypergraph constructs an empty hypergraph.
// Fails with ErrDirectedHypergraph for WithDirected(true) and
// ErrStrategyNotSupported for any strategy other than IncidenceMap.
func NewHypergraph(opts ...GraphOption) (*Hypergraph, error) {
	cfg := config{kind: core.IncidenceMap}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.directed {
		return nil, ErrDirectedHypergraph
	}
	if cfg.kind != core.IncidenceMap {
		return nil, fmt.Errorf("%w: %s", ErrStrategyNotSupported, cfg.kind)
	}
	inc := core.NewHypergraphIncidenceMap()

	return &Hypergraph{
		base: base{
			rep:    inc,
			kind:   core.IncidenceMap,
			policy: edgePolicy{AllowLoops: true, AllowParallel: true},
			attrs:  cfg.attrs,
		},
		inc: inc,
	}, nil
}

// AddHyperedge connects the given member set (deduplicated, sorted; one
// member minimum) and returns the stored record with its generated ID.
// Weight and attributes follow the edge options.
// Fails with ErrEmptyHyperedge or core.ErrVertexNotFound.
func (g *Hypergraph) AddHyperedge(members []string, opts ...EdgeOption) (*core.Hyperedge, error) {
	if len(members) == 0 {
		return nil, ErrEmptyHyperedge
	}
	// Options are carried on a scratch edge to reuse WithWeight/WithEdgeAttrs.
	scratch := core.Edge{Weight: core.DefaultWeight}
	for _, opt := range opts {
		opt(&scratch)
	}
	he, err := g.inc.AddHyperedge(members, scratch.Weight, scratch.Attrs)
	if err != nil {
		return nil, err
	}
	g.notify(Event{Kind: EventHyperedgeAdded, EdgeID: he.ID, Weight: he.Weight})

	return he, nil
}

// RemoveHyperedge deletes the hyperedge by ID.
// Fails with core.ErrEdgeNotFound.
func (g *Hypergraph) RemoveHyperedge(id string) error {
	if err := g.inc.RemoveHyperedge(id); err != nil {
		return err
	}
	g.notify(Event{Kind: EventHyperedgeRemoved, EdgeID: id})

	return nil
}

// HyperedgeByID returns the hyperedge record or core.ErrEdgeNotFound.
func (g *Hypergraph) HyperedgeByID(id string) (*core.Hyperedge, error) {
	return g.inc.HyperedgeByID(id)
}

// Hyperedges returns all hyperedge records in insertion order.
func (g *Hypergraph) Hyperedges() []*core.Hyperedge {
	return g.inc.Hyperedges()
}

// IncidentHyperedges returns the hyperedges touching the vertex in insertion
// order. Fails with core.ErrVertexNotFound.
func (g *Hypergraph) IncidentHyperedges(id string) ([]*core.Hyperedge, error) {
	return g.inc.IncidentHyperedges(id)
}

// VertexDegree returns the number of hyperedges incident to the vertex.
// Fails with core.ErrVertexNotFound.
func (g *Hypergraph) VertexDegree(id string) (int, error) {
	incident, err := g.inc.IncidentHyperedges(id)
	if err != nil {
		return 0, err
	}

	return len(incident), nil
}

// ToBipartite projects the hypergraph onto an undirected simple graph with
// one "v:"-prefixed vertex per original vertex, one "h:"-prefixed vertex per
// hyperedge, and one unit edge per membership. Hyperedge weight and
// attributes move onto the "h:" vertex.
// Complexity: O(V + sum of hyperedge sizes)
func (g *Hypergraph) ToBipartite() (*SimpleGraph, error) {
	out, err := NewSimpleGraph()
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		if err = out.AddVertex(BipartiteVertexPrefix+v.ID, WithVertexAttrs(v.Attrs.Clone())); err != nil {
			return nil, err
		}
	}
	for _, he := range g.Hyperedges() {
		heAttrs := he.Attrs.Clone()
		if heAttrs == nil {
			heAttrs = core.Attrs{}
		}
		heAttrs["weight"] = core.Number(he.Weight)
		heID := BipartiteHyperedgePrefix + he.ID
		if err = out.AddVertex(heID, WithVertexAttrs(heAttrs)); err != nil {
			return nil, err
		}
		for _, m := range he.Members {
			if err = out.AddEdge(BipartiteVertexPrefix+m, heID); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
