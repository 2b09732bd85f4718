// Package graphs provides the constraint-enforcing graph types built on the
// storage strategies of package core.
//
// Types and their edge policies:
//
//   - SimpleGraph - no self-loops, no parallel edges
//   - Multigraph  - parallel edges allowed, no self-loops
//   - Pseudograph - self-loops and parallel edges allowed
//   - Hypergraph  - hyperedges over nonempty vertex sets, always undirected
//
// Every type embeds one shared core (composition, not a type hierarchy):
// a backing core.Representation chosen at construction, an edgePolicy value
// enforced before mutations reach storage, graph-level attributes, and the
// observer list. Policy violations fail with graphs sentinels (ErrSelfLoop,
// ErrDuplicateEdge, ErrEmptyHyperedge); storage failures pass through as
// core sentinels. A rejected mutation leaves the graph untouched.
//
// Construction uses functional options:
//
//	g, err := graphs.NewSimpleGraph(
//	    graphs.WithDirected(true),
//	    graphs.WithRepresentation(core.Matrix),
//	)
//
// The Graph interface is the read surface the algorithm packages (bfs, dfs,
// paths, connectivity, mst) accept, so any type under any backing behaves
// identically when traversed or serialized.
//
// Mutation observers (Attach/Detach) fire synchronously after a mutation
// commits; Recorder keeps bounded history, LogObserver emits structured
// logrus entries. The library core itself never logs.
//
// Graph types are not internally synchronized: one logical mutator at a
// time, and concurrent reads are safe only while no mutation is in flight.
package graphs
