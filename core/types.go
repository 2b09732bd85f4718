package core

import "fmt"

// DefaultWeight is the edge weight applied when the caller does not set one.
const DefaultWeight = 1.0

// Vertex is a node: a unique caller-supplied identifier plus an open
// attribute bag. A Vertex belongs to exactly one graph instance.
type Vertex struct {
	// ID uniquely identifies this vertex within its graph.
	ID string

	// Attrs holds arbitrary tagged metadata; may be nil.
	Attrs Attrs
}

// Edge is a binary connection (Source, Target) with a numeric weight and an
// open attribute bag. For undirected graphs, (Source, Target) and
// (Target, Source) denote the same edge; strategies canonicalize lookups.
type Edge struct {
	Source string
	Target string
	Weight float64
	Attrs  Attrs
}

// Hyperedge is a connection among a nonempty set of vertices. Hyperedges have
// no natural (source, target) key, so the incidence-map strategy assigns each
// a unique textual ID at insertion time.
type Hyperedge struct {
	// ID is the strategy-assigned unique identifier.
	ID string

	// Members holds the distinct member vertex IDs, sorted ascending.
	Members []string

	Weight float64
	Attrs  Attrs
}

// Contains reports whether the hyperedge is incident to the given vertex.
func (h *Hyperedge) Contains(vertexID string) bool {
	for _, m := range h.Members {
		if m == vertexID {
			return true
		}
	}

	return false
}

// Size returns the number of member vertices.
func (h *Hyperedge) Size() int { return len(h.Members) }

// StrategyKind enumerates the interchangeable storage strategies.
type StrategyKind uint8

const (
	// ListSimple is a set-backed adjacency list: O(V+E) space, O(1) amortized
	// edge lookup, at most one edge per vertex pair by construction.
	ListSimple StrategyKind = iota + 1

	// Matrix is a dense adjacency matrix: O(V²) space, O(1) edge lookup,
	// preferred for dense graphs.
	Matrix

	// ListMulti is a list-backed adjacency list keeping parallel edges in
	// insertion order.
	ListMulti

	// IncidenceMap is the bidirectional vertex↔hyperedge index used by
	// hypergraphs; binary-edge lookup is O(k) in the hyperedges touching the
	// source vertex.
	IncidenceMap
)

// String returns the stable textual name used in snapshots and errors.
func (k StrategyKind) String() string {
	switch k {
	case ListSimple:
		return "adjacency_list"
	case Matrix:
		return "adjacency_matrix"
	case ListMulti:
		return "multi_adjacency_list"
	case IncidenceMap:
		return "incidence_map"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(k))
	}
}

// ParseStrategyKind maps a textual strategy name back to its StrategyKind.
// Unknown names fail with ErrUnknownStrategy.
func ParseStrategyKind(name string) (StrategyKind, error) {
	switch name {
	case "adjacency_list":
		return ListSimple, nil
	case "adjacency_matrix":
		return Matrix, nil
	case "multi_adjacency_list":
		return ListMulti, nil
	case "incidence_map":
		return IncidenceMap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Representation is the capability contract every storage strategy satisfies.
// Graph types and algorithms depend only on this interface, never on a
// concrete strategy, so a graph behaves identically under any backing.
//
// Strategies enforce existence invariants (endpoints must exist, no stale
// entries after removal) but not graph-type policy; the only structural
// exception is ErrDuplicateEdge where the storage shape itself admits at most
// one edge per pair.
type Representation interface {
	// AddVertex registers v. Fails with ErrEmptyVertexID or, if the ID is
	// taken, ErrDuplicateVertex.
	AddVertex(v *Vertex) error

	// RemoveVertex deletes the vertex and every edge or hyperedge membership
	// touching it. Fails with ErrVertexNotFound.
	RemoveVertex(id string) error

	// AddEdge stores e. Fails with ErrVertexNotFound if either endpoint is
	// absent, or ErrDuplicateEdge where the shape forbids parallels.
	AddEdge(e *Edge) error

	// RemoveEdge deletes one edge between the pair (the oldest, for shapes
	// keeping parallels). Fails with ErrEdgeNotFound.
	RemoveEdge(source, target string) error

	// HasVertex reports vertex membership. O(1).
	HasVertex(id string) bool

	// HasEdge reports whether at least one edge connects the pair.
	HasEdge(source, target string) bool

	// GetVertex returns the vertex record or ErrVertexNotFound.
	GetVertex(id string) (*Vertex, error)

	// GetEdge returns the first matching edge or ErrEdgeNotFound.
	GetEdge(source, target string) (*Edge, error)

	// EdgesBetween returns all edges between the pair in insertion order
	// (length 0 or 1 for single-edge shapes).
	EdgesBetween(source, target string) []*Edge

	// Neighbors returns the distinct adjacent vertex IDs sorted ascending,
	// deduplicated even under parallel edges. For directed graphs this is the
	// outgoing neighborhood. Fails with ErrVertexNotFound.
	Neighbors(id string) ([]string, error)

	// Vertices returns all vertex records sorted by ID.
	Vertices() []*Vertex

	// Edges returns every stored edge exactly once, in deterministic order.
	Edges() []*Edge

	// VertexCount and EdgeCount report cardinalities in O(1), accurate after
	// any interleaving of adds and removals.
	VertexCount() int
	EdgeCount() int
}

// NewRepresentation constructs the strategy named by kind. The directed flag
// controls pair canonicalization inside binary strategies and is ignored by
// IncidenceMap (hypergraphs are undirected).
// Fails with ErrUnknownStrategy for unrecognized kinds.
// Complexity: O(1)
func NewRepresentation(kind StrategyKind, directed bool) (Representation, error) {
	switch kind {
	case ListSimple:
		return NewSimpleAdjacencyList(directed), nil
	case Matrix:
		return NewAdjacencyMatrix(directed), nil
	case ListMulti:
		return NewMultiAdjacencyList(directed), nil
	case IncidenceMap:
		return NewHypergraphIncidenceMap(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, kind)
	}
}
