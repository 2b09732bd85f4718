package graphs

import (
	"fmt"

	"github.com/katalvlaran/polygraph/core"
)

// Graph is the read surface shared by every graph type. Algorithm packages
// accept this interface, so any type under any backing strategy can be
// traversed, searched, and serialized the same way.
type Graph interface {
	// Directed reports whether edges carry orientation.
	Directed() bool

	// Strategy names the backing representation.
	Strategy() core.StrategyKind

	// Attrs returns the graph-level attribute bag (may be nil).
	Attrs() core.Attrs

	HasVertex(id string) bool
	HasEdge(source, target string) bool

	// Neighbors returns the distinct adjacent vertex IDs sorted ascending.
	Neighbors(id string) ([]string, error)

	// Vertices returns all vertex records sorted by ID; VertexIDs the IDs alone.
	Vertices() []*core.Vertex
	VertexIDs() []string

	// Edges returns every edge once in the strategy's deterministic order.
	// EdgesBetween returns all parallels between a pair in insertion order.
	Edges() []*core.Edge
	EdgesBetween(source, target string) []*core.Edge

	VertexCount() int
	EdgeCount() int
}

// edgePolicy is the per-type constraint set enforced before any mutation
// reaches storage. Graph types differ only in this value plus their accepted
// strategies; everything else is the shared base.
type edgePolicy struct {
	AllowLoops    bool
	AllowParallel bool
}

// base is the shared graph core: one backing Representation, one edge
// policy, graph-level attributes, and the observer list. Graph types embed
// it and add their own surface.
//
// base is not internally synchronized: one logical mutator at a time;
// concurrent reads are safe only while no mutation is in flight.
type base struct {
	rep       core.Representation
	kind      core.StrategyKind
	directed  bool
	policy    edgePolicy
	attrs     core.Attrs
	observers []Observer
}

// newBase resolves options against the type's defaults, validates the chosen
// strategy against the allowed set, and instantiates the backing storage.
func newBase(defaultKind core.StrategyKind, allowed []core.StrategyKind, policy edgePolicy, opts []GraphOption) (base, error) {
	cfg := config{kind: defaultKind}
	for _, opt := range opts {
		opt(&cfg)
	}
	ok := false
	for _, k := range allowed {
		if cfg.kind == k {
			ok = true

			break
		}
	}
	if !ok {
		return base{}, fmt.Errorf("%w: %s", ErrStrategyNotSupported, cfg.kind)
	}
	rep, err := core.NewRepresentation(cfg.kind, cfg.directed)
	if err != nil {
		return base{}, err
	}

	return base{
		rep:      rep,
		kind:     cfg.kind,
		directed: cfg.directed,
		policy:   policy,
		attrs:    cfg.attrs,
	}, nil
}

// AddVertex registers a new vertex under the given ID.
// Fails with core.ErrEmptyVertexID or core.ErrDuplicateVertex.
// Complexity: O(1)
func (b *base) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return core.ErrEmptyVertexID
	}
	v := &core.Vertex{ID: id}
	for _, opt := range opts {
		opt(v)
	}
	if err := b.rep.AddVertex(v); err != nil {
		return err
	}
	b.notify(Event{Kind: EventVertexAdded, Vertex: id})

	return nil
}

// RemoveVertex deletes the vertex and every incident edge.
// Fails with core.ErrVertexNotFound.
func (b *base) RemoveVertex(id string) error {
	if err := b.rep.RemoveVertex(id); err != nil {
		return err
	}
	b.notify(Event{Kind: EventVertexRemoved, Vertex: id})

	return nil
}

// AddEdge connects source to target. The weight defaults to
// core.DefaultWeight; override with WithWeight.
//
// Policy checks run in a fixed order before storage is touched: empty ID,
// self-loop, endpoint existence, duplicate pair. A rejected edge leaves the
// graph unchanged and fires no event.
func (b *base) AddEdge(source, target string, opts ...EdgeOption) error {
	if source == "" || target == "" {
		return core.ErrEmptyVertexID
	}
	if source == target && !b.policy.AllowLoops {
		return fmt.Errorf("%w: %q", ErrSelfLoop, source)
	}
	if !b.rep.HasVertex(source) {
		return fmt.Errorf("%w: %q", core.ErrVertexNotFound, source)
	}
	if !b.rep.HasVertex(target) {
		return fmt.Errorf("%w: %q", core.ErrVertexNotFound, target)
	}
	if !b.policy.AllowParallel && b.rep.HasEdge(source, target) {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateEdge, source, target)
	}
	e := &core.Edge{Source: source, Target: target, Weight: core.DefaultWeight}
	for _, opt := range opts {
		opt(e)
	}
	if err := b.rep.AddEdge(e); err != nil {
		return err
	}
	b.notify(Event{Kind: EventEdgeAdded, Source: source, Target: target, Weight: e.Weight})

	return nil
}

// RemoveEdge deletes one edge between the pair (the oldest parallel first).
// Fails with core.ErrEdgeNotFound.
func (b *base) RemoveEdge(source, target string) error {
	if err := b.rep.RemoveEdge(source, target); err != nil {
		return err
	}
	b.notify(Event{Kind: EventEdgeRemoved, Source: source, Target: target})

	return nil
}

// Directed reports whether edges carry orientation.
func (b *base) Directed() bool { return b.directed }

// Strategy names the backing representation.
func (b *base) Strategy() core.StrategyKind { return b.kind }

// Attrs returns the graph-level attribute bag (may be nil).
func (b *base) Attrs() core.Attrs { return b.attrs }

// HasVertex reports vertex membership. O(1).
func (b *base) HasVertex(id string) bool { return b.rep.HasVertex(id) }

// HasEdge reports whether at least one edge connects the pair.
func (b *base) HasEdge(source, target string) bool { return b.rep.HasEdge(source, target) }

// Vertex returns the vertex record or core.ErrVertexNotFound.
func (b *base) Vertex(id string) (*core.Vertex, error) { return b.rep.GetVertex(id) }

// Edge returns the first edge between the pair or core.ErrEdgeNotFound.
func (b *base) Edge(source, target string) (*core.Edge, error) {
	return b.rep.GetEdge(source, target)
}

// Neighbors returns the distinct adjacent vertex IDs sorted ascending.
// Fails with core.ErrVertexNotFound.
func (b *base) Neighbors(id string) ([]string, error) { return b.rep.Neighbors(id) }

// Vertices returns all vertex records sorted by ID.
func (b *base) Vertices() []*core.Vertex { return b.rep.Vertices() }

// VertexIDs returns all vertex IDs sorted ascending.
func (b *base) VertexIDs() []string {
	vs := b.rep.Vertices()
	ids := make([]string, len(vs))
	for i, v := range vs {
		ids[i] = v.ID
	}

	return ids
}

// Edges returns every edge once in the strategy's deterministic order.
func (b *base) Edges() []*core.Edge { return b.rep.Edges() }

// EdgesBetween returns all edges between the pair in insertion order.
func (b *base) EdgesBetween(source, target string) []*core.Edge {
	return b.rep.EdgesBetween(source, target)
}

// VertexCount returns the number of vertices. O(1).
func (b *base) VertexCount() int { return b.rep.VertexCount() }

// EdgeCount returns the number of edges (parallels counted individually;
// hyperedges counted as units). O(1).
func (b *base) EdgeCount() int { return b.rep.EdgeCount() }

// Degree returns the number of edges incident to id, parallels counted
// individually and a self-loop counted once. For directed graphs this is the
// total of in- and out-degree. Fails with core.ErrVertexNotFound.
// Complexity: O(E)
func (b *base) Degree(id string) (int, error) {
	if !b.rep.HasVertex(id) {
		return 0, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
	}
	deg := 0
	for _, e := range b.rep.Edges() {
		if e.Source == id || e.Target == id {
			deg++
		}
	}

	return deg, nil
}
