// Package graphjson saves and loads graphs as JSON snapshots.
//
// A snapshot preserves the graph type, directedness, backing strategy,
// graph-level attributes, every vertex with its attribute bag, and every edge
// with endpoints, weight, and attributes. Hypergraph snapshots record full
// hyperedge member sets instead of the clique-expanded edge view.
//
// Hyperedge IDs are strategy-assigned, so a loaded hypergraph carries fresh
// IDs; everything else round-trips exactly.
package graphjson

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/graphs"
)

// Snapshot type names.
const (
	TypeSimple = "simple_graph"
	TypeMulti  = "multigraph"
	TypePseudo = "pseudograph"
	TypeHyper  = "hypergraph"
)

// Sentinel errors for snapshot encoding and decoding.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("graphjson: graph is nil")

	// ErrUnsupportedGraph reports a graph value with no snapshot recipe.
	ErrUnsupportedGraph = errors.New("graphjson: unsupported graph type")

	// ErrUnknownGraphType reports a snapshot whose type field names no known
	// graph type.
	ErrUnknownGraphType = errors.New("graphjson: unknown graph type")
)

// Snapshot is the JSON form of a graph.
type Snapshot struct {
	Type           string            `json:"type"`
	Directed       bool              `json:"directed"`
	Representation string            `json:"representation"`
	Attrs          core.Attrs        `json:"attrs,omitempty"`
	Vertices       []VertexRecord    `json:"vertices"`
	Edges          []EdgeRecord      `json:"edges,omitempty"`
	Hyperedges     []HyperedgeRecord `json:"hyperedges,omitempty"`
}

// VertexRecord is one vertex in a snapshot.
type VertexRecord struct {
	ID    string     `json:"id"`
	Attrs core.Attrs `json:"attrs,omitempty"`
}

// EdgeRecord is one binary edge in a snapshot.
type EdgeRecord struct {
	Source string     `json:"source"`
	Target string     `json:"target"`
	Weight float64    `json:"weight"`
	Attrs  core.Attrs `json:"attrs,omitempty"`
}

// HyperedgeRecord is one hyperedge in a snapshot. ID is informational; load
// assigns fresh IDs.
type HyperedgeRecord struct {
	ID      string     `json:"id"`
	Members []string   `json:"members"`
	Weight  float64    `json:"weight"`
	Attrs   core.Attrs `json:"attrs,omitempty"`
}

// Capture builds a Snapshot from a live graph.
// Complexity: O(V + E)
func Capture(g graphs.Graph) (*Snapshot, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	snap := &Snapshot{
		Directed:       g.Directed(),
		Representation: g.Strategy().String(),
		Attrs:          g.Attrs().Clone(),
		Vertices:       make([]VertexRecord, 0, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		snap.Vertices = append(snap.Vertices, VertexRecord{ID: v.ID, Attrs: v.Attrs.Clone()})
	}

	switch src := g.(type) {
	case *graphs.SimpleGraph:
		snap.Type = TypeSimple
		captureEdges(snap, g)
	case *graphs.Multigraph:
		snap.Type = TypeMulti
		captureEdges(snap, g)
	case *graphs.Pseudograph:
		snap.Type = TypePseudo
		captureEdges(snap, g)
	case *graphs.Hypergraph:
		snap.Type = TypeHyper
		for _, he := range src.Hyperedges() {
			snap.Hyperedges = append(snap.Hyperedges, HyperedgeRecord{
				ID:      he.ID,
				Members: he.Members,
				Weight:  he.Weight,
				Attrs:   he.Attrs.Clone(),
			})
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGraph, g)
	}

	return snap, nil
}

func captureEdges(snap *Snapshot, g graphs.Graph) {
	snap.Edges = make([]EdgeRecord, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		snap.Edges = append(snap.Edges, EdgeRecord{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			Attrs:  e.Attrs.Clone(),
		})
	}
}

// Restore rebuilds a live graph from a Snapshot. Per-record constraint
// violations (duplicate vertex, missing endpoint, policy breach) surface
// with their record's identity so bulk loaders can decide to skip or abort.
func Restore(snap *Snapshot) (graphs.Graph, error) {
	if snap == nil {
		return nil, errors.New("graphjson: snapshot is nil")
	}
	kind, err := core.ParseStrategyKind(snap.Representation)
	if err != nil {
		return nil, errors.Wrap(err, "graphjson: representation")
	}

	opts := []graphs.GraphOption{
		graphs.WithDirected(snap.Directed),
		graphs.WithRepresentation(kind),
		graphs.WithAttrs(snap.Attrs.Clone()),
	}
	switch snap.Type {
	case TypeSimple:
		g, err := graphs.NewSimpleGraph(opts...)
		if err != nil {
			return nil, err
		}

		return g, restoreBinary(snap, g)
	case TypeMulti:
		g, err := graphs.NewMultigraph(opts...)
		if err != nil {
			return nil, err
		}

		return g, restoreBinary(snap, g)
	case TypePseudo:
		g, err := graphs.NewPseudograph(opts...)
		if err != nil {
			return nil, err
		}

		return g, restoreBinary(snap, g)
	case TypeHyper:
		g, err := graphs.NewHypergraph(graphs.WithAttrs(snap.Attrs.Clone()))
		if err != nil {
			return nil, err
		}
		for _, v := range snap.Vertices {
			if err = g.AddVertex(v.ID, graphs.WithVertexAttrs(v.Attrs.Clone())); err != nil {
				return nil, errors.Wrapf(err, "graphjson: vertex %q", v.ID)
			}
		}
		for _, he := range snap.Hyperedges {
			_, err = g.AddHyperedge(he.Members,
				graphs.WithWeight(he.Weight), graphs.WithEdgeAttrs(he.Attrs.Clone()))
			if err != nil {
				return nil, errors.Wrapf(err, "graphjson: hyperedge %v", he.Members)
			}
		}

		return g, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGraphType, snap.Type)
	}
}

type binaryTarget interface {
	AddVertex(id string, opts ...graphs.VertexOption) error
	AddEdge(source, target string, opts ...graphs.EdgeOption) error
}

func restoreBinary(snap *Snapshot, g binaryTarget) error {
	for _, v := range snap.Vertices {
		if err := g.AddVertex(v.ID, graphs.WithVertexAttrs(v.Attrs.Clone())); err != nil {
			return errors.Wrapf(err, "graphjson: vertex %q", v.ID)
		}
	}
	for _, e := range snap.Edges {
		err := g.AddEdge(e.Source, e.Target,
			graphs.WithWeight(e.Weight), graphs.WithEdgeAttrs(e.Attrs.Clone()))
		if err != nil {
			return errors.Wrapf(err, "graphjson: edge %s-%s", e.Source, e.Target)
		}
	}

	return nil
}

// Marshal serializes the graph as a JSON snapshot.
func Marshal(g graphs.Graph) ([]byte, error) {
	snap, err := Capture(g)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, errors.Wrap(err, "graphjson: encode snapshot")
	}

	return data, nil
}

// MarshalIndent is Marshal with two-space indentation, for files meant to be
// read or diffed by humans.
func MarshalIndent(g graphs.Graph) ([]byte, error) {
	snap, err := Capture(g)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "graphjson: encode snapshot")
	}

	return data, nil
}

// Unmarshal decodes a JSON snapshot and rebuilds the graph it describes.
func Unmarshal(data []byte) (graphs.Graph, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "graphjson: decode snapshot")
	}

	return Restore(&snap)
}
