// Package core provides the identifier and attribute model shared by every
// graph type, and the four interchangeable storage strategies behind the
// Representation interface.
//
// Model types:
//
//   - Vertex    - unique string ID + tagged attribute bag (Attrs)
//   - Edge      - (Source, Target) pair + float64 weight + attribute bag
//   - Hyperedge - generated ID + nonempty sorted member set + weight + bag
//   - Value     - tagged attribute union: string | number | bool | nested Attrs
//
// Storage strategies (selected via StrategyKind and NewRepresentation):
//
//   - SimpleAdjacencyList   - set-backed, O(V+E) space, one edge per pair
//   - AdjacencyMatrix       - dense, O(V²) space, O(1) edge lookup
//   - MultiAdjacencyList    - list-backed, parallel edges in insertion order
//   - HypergraphIncidenceMap - vertex↔hyperedge index, clique-view edges
//
// Strategies enforce existence invariants only (endpoints must exist, no
// stale entries after removal); graph-type policy such as loop and parallel
// rejection lives in the graphs package. All query surfaces are
// deterministic: vertices sorted by ID, neighbors sorted and deduplicated,
// edges in canonical or insertion order per strategy.
//
// Nothing in this package is internally synchronized; a graph has one
// logical mutator at a time, and concurrent reads are safe only while no
// mutation is in flight.
//
// Errors:
//
//	ErrEmptyVertexID    - empty identifier supplied
//	ErrDuplicateVertex  - vertex ID already present
//	ErrVertexNotFound   - referenced vertex does not exist
//	ErrEdgeNotFound     - referenced edge or hyperedge does not exist
//	ErrDuplicateEdge    - storage shape admits at most one edge per pair
//	ErrUnknownStrategy  - unrecognized StrategyKind
//	ErrInvalidAttrValue - attribute value outside the supported kinds
//	ErrNoMembers        - hyperedge with an empty member set
package core
