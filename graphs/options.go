package graphs

import "github.com/katalvlaran/polygraph/core"

// config collects construction-time settings before the backing strategy is
// instantiated. Each graph type supplies its own defaults and validates the
// final kind against the strategies it can honor.
type config struct {
	directed bool
	kind     core.StrategyKind
	attrs    core.Attrs
}

// GraphOption configures a graph at construction time.
type GraphOption func(*config)

// WithDirected sets edge orientation for the whole graph
// (true = directed, false = undirected; the default is undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithRepresentation selects the backing storage strategy. Each graph type
// accepts only the strategies whose shape can honor its edge policy;
// constructors fail with ErrStrategyNotSupported otherwise.
func WithRepresentation(kind core.StrategyKind) GraphOption {
	return func(c *config) { c.kind = kind }
}

// WithAttrs sets graph-level attributes (name, labels, and the like).
func WithAttrs(attrs core.Attrs) GraphOption {
	return func(c *config) { c.attrs = attrs }
}

// VertexOption configures a vertex as it is added.
type VertexOption func(*core.Vertex)

// WithVertexAttrs sets the vertex's attribute bag.
func WithVertexAttrs(attrs core.Attrs) VertexOption {
	return func(v *core.Vertex) { v.Attrs = attrs }
}

// EdgeOption configures an edge or hyperedge as it is added.
type EdgeOption func(*core.Edge)

// WithWeight sets the edge weight (default core.DefaultWeight, 1.0).
func WithWeight(w float64) EdgeOption {
	return func(e *core.Edge) { e.Weight = w }
}

// WithEdgeAttrs sets the edge's attribute bag.
func WithEdgeAttrs(attrs core.Attrs) EdgeOption {
	return func(e *core.Edge) { e.Attrs = attrs }
}
