package graphs

import "errors"

// Sentinel errors for graph-type policy violations. Storage-level failures
// (core.ErrVertexNotFound, core.ErrDuplicateVertex, core.ErrEdgeNotFound)
// pass through from the core package unchanged.
var (
	// ErrSelfLoop indicates an edge with identical endpoints on a graph type
	// that forbids loops (SimpleGraph, Multigraph).
	ErrSelfLoop = errors.New("graphs: self-loops not allowed")

	// ErrDuplicateEdge indicates a second edge between an already-connected
	// pair on a graph type that forbids parallel edges (SimpleGraph).
	ErrDuplicateEdge = errors.New("graphs: duplicate edge between pair")

	// ErrEmptyHyperedge indicates a hyperedge with no member vertices.
	ErrEmptyHyperedge = errors.New("graphs: hyperedge needs at least one member")

	// ErrStrategyNotSupported indicates a representation strategy the graph
	// type cannot honor (e.g. a single-edge shape under a Multigraph).
	ErrStrategyNotSupported = errors.New("graphs: representation strategy not supported by this graph type")

	// ErrDirectedHypergraph indicates WithDirected(true) on a hypergraph;
	// hyperedges are orientation-free member sets.
	ErrDirectedHypergraph = errors.New("graphs: hypergraphs are undirected")
)
