// Package convert moves a graph between type tiers and backing strategies.
//
// Upgrades (SimpleToMulti, SimpleToPseudo, MultiToPseudo) are lossless: every
// vertex, edge, weight, and attribute bag carries over unchanged. Downgrades
// (MultiToSimple, PseudoToSimple) are lossy by nature: parallel edges collapse
// into one edge whose weight follows a MergeStrategy (min by default), and
// PseudoToSimple additionally drops self-loops. Rebuild keeps both the type
// and the topology and swaps only the backing StrategyKind.
//
// All conversions construct a fresh graph; the input is never mutated.
package convert

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/graphs"
)

// Sentinel errors for conversions.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("convert: graph is nil")

	// ErrUnknownMergeStrategy reports a MergeStrategy outside the declared set.
	ErrUnknownMergeStrategy = errors.New("convert: unknown merge strategy")

	// ErrUnsupportedGraph reports a graph value Rebuild has no recipe for.
	ErrUnsupportedGraph = errors.New("convert: unsupported graph type")
)

// mutable is the write surface every binary graph type promotes from its
// shared core; conversions populate targets through it.
type mutable interface {
	graphs.Graph
	AddVertex(id string, opts ...graphs.VertexOption) error
	AddEdge(source, target string, opts ...graphs.EdgeOption) error
}

// SimpleToMulti upgrades a simple graph to a multigraph. Lossless.
// Complexity: O(V + E)
func SimpleToMulti(g *graphs.SimpleGraph) (*graphs.Multigraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out, err := graphs.NewMultigraph(graphs.WithDirected(g.Directed()), graphs.WithAttrs(g.Attrs().Clone()))
	if err != nil {
		return nil, err
	}
	if err = copyInto(g, out); err != nil {
		return nil, err
	}

	return out, nil
}

// SimpleToPseudo upgrades a simple graph to a pseudograph. Lossless.
func SimpleToPseudo(g *graphs.SimpleGraph) (*graphs.Pseudograph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out, err := graphs.NewPseudograph(graphs.WithDirected(g.Directed()), graphs.WithAttrs(g.Attrs().Clone()))
	if err != nil {
		return nil, err
	}
	if err = copyInto(g, out); err != nil {
		return nil, err
	}

	return out, nil
}

// MultiToPseudo upgrades a multigraph to a pseudograph. Lossless; the result
// merely gains the right to hold self-loops.
func MultiToPseudo(g *graphs.Multigraph) (*graphs.Pseudograph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out, err := graphs.NewPseudograph(graphs.WithDirected(g.Directed()), graphs.WithAttrs(g.Attrs().Clone()))
	if err != nil {
		return nil, err
	}
	if err = copyInto(g, out); err != nil {
		return nil, err
	}

	return out, nil
}

// MultiToSimple downgrades a multigraph, collapsing each parallel group into
// one edge. The merged edge's weight follows the MergeStrategy (min unless
// WithMergeStrategy says otherwise); its attributes come from the edge whose
// weight was chosen (the first inserted parallel for sum and mean).
// Complexity: O(V + E)
func MultiToSimple(g *graphs.Multigraph, opts ...Option) (*graphs.SimpleGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return collapse(g, opts)
}

// PseudoToSimple downgrades a pseudograph: self-loops are dropped, parallel
// groups collapse exactly as in MultiToSimple.
func PseudoToSimple(g *graphs.Pseudograph, opts ...Option) (*graphs.SimpleGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return collapse(g, opts)
}

// Rebuild reconstructs the graph on a different backing strategy, preserving
// its concrete type, directedness, attributes, and topology. Strategies the
// type does not accept surface graphs.ErrStrategyNotSupported.
// Complexity: O(V + E)
func Rebuild(g graphs.Graph, kind core.StrategyKind) (graphs.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := func(src graphs.Graph) []graphs.GraphOption {
		return []graphs.GraphOption{
			graphs.WithDirected(src.Directed()),
			graphs.WithRepresentation(kind),
			graphs.WithAttrs(src.Attrs().Clone()),
		}
	}
	switch src := g.(type) {
	case *graphs.SimpleGraph:
		out, err := graphs.NewSimpleGraph(opts(src)...)
		if err != nil {
			return nil, err
		}
		if err = copyInto(src, out); err != nil {
			return nil, err
		}

		return out, nil
	case *graphs.Multigraph:
		out, err := graphs.NewMultigraph(opts(src)...)
		if err != nil {
			return nil, err
		}
		if err = copyInto(src, out); err != nil {
			return nil, err
		}

		return out, nil
	case *graphs.Pseudograph:
		out, err := graphs.NewPseudograph(opts(src)...)
		if err != nil {
			return nil, err
		}
		if err = copyInto(src, out); err != nil {
			return nil, err
		}

		return out, nil
	case *graphs.Hypergraph:
		if kind != core.IncidenceMap {
			return nil, fmt.Errorf("%w: %s", graphs.ErrStrategyNotSupported, kind)
		}
		out, err := graphs.NewHypergraph(graphs.WithAttrs(src.Attrs().Clone()))
		if err != nil {
			return nil, err
		}
		for _, v := range src.Vertices() {
			if err = out.AddVertex(v.ID, graphs.WithVertexAttrs(v.Attrs.Clone())); err != nil {
				return nil, err
			}
		}
		for _, he := range src.Hyperedges() {
			_, err = out.AddHyperedge(he.Members,
				graphs.WithWeight(he.Weight), graphs.WithEdgeAttrs(he.Attrs.Clone()))
			if err != nil {
				return nil, err
			}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGraph, g)
	}
}

// copyInto replays src's vertices and edges into dst unchanged.
func copyInto(src graphs.Graph, dst mutable) error {
	for _, v := range src.Vertices() {
		if err := dst.AddVertex(v.ID, graphs.WithVertexAttrs(v.Attrs.Clone())); err != nil {
			return fmt.Errorf("convert: vertex %q: %w", v.ID, err)
		}
	}
	for _, e := range src.Edges() {
		err := dst.AddEdge(e.Source, e.Target,
			graphs.WithWeight(e.Weight), graphs.WithEdgeAttrs(e.Attrs.Clone()))
		if err != nil {
			return fmt.Errorf("convert: edge %s-%s: %w", e.Source, e.Target, err)
		}
	}

	return nil
}

// collapse builds a simple graph from a parallel-capable source: self-loops
// are skipped, each remaining parallel group becomes one merged edge.
func collapse(src graphs.Graph, opts []Option) (*graphs.SimpleGraph, error) {
	cfg := options{merge: MergeMin}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.merge.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMergeStrategy, cfg.merge)
	}

	out, err := graphs.NewSimpleGraph(graphs.WithDirected(src.Directed()), graphs.WithAttrs(src.Attrs().Clone()))
	if err != nil {
		return nil, err
	}
	for _, v := range src.Vertices() {
		if err = out.AddVertex(v.ID, graphs.WithVertexAttrs(v.Attrs.Clone())); err != nil {
			return nil, fmt.Errorf("convert: vertex %q: %w", v.ID, err)
		}
	}

	type group struct {
		edges   []*core.Edge
		weights []float64
	}
	groups := make(map[[2]string]*group)
	order := make([][2]string, 0)
	for _, e := range src.Edges() {
		if e.Source == e.Target {
			continue
		}
		key := [2]string{e.Source, e.Target}
		if !src.Directed() && key[1] < key[0] {
			key[0], key[1] = key[1], key[0]
		}
		grp, ok := groups[key]
		if !ok {
			grp = &group{}
			groups[key] = grp
			order = append(order, key)
		}
		grp.edges = append(grp.edges, e)
		grp.weights = append(grp.weights, e.Weight)
	}

	for _, key := range order {
		grp := groups[key]
		weight := mergeWeights(cfg.merge, grp.weights)
		rep := grp.edges[0]
		if cfg.merge == MergeMin || cfg.merge == MergeMax {
			for _, e := range grp.edges {
				if e.Weight == weight {
					rep = e

					break
				}
			}
		}
		err = out.AddEdge(rep.Source, rep.Target,
			graphs.WithWeight(weight), graphs.WithEdgeAttrs(rep.Attrs.Clone()))
		if err != nil {
			return nil, fmt.Errorf("convert: edge %s-%s: %w", rep.Source, rep.Target, err)
		}
	}

	return out, nil
}
