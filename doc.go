// Package polygraph is an in-memory graph library built around
// interchangeable storage strategies and constraint-enforcing graph types.
//
// Four graph types cover the loop/parallel-edge policy space:
//
//	SimpleGraph — no self-loops, no parallel edges
//	Multigraph  — parallel edges, no self-loops
//	Pseudograph — parallel edges and self-loops
//	Hypergraph  — edges over arbitrary nonempty vertex sets
//
// Each type composes one of four storage strategies (set-backed adjacency
// list, dense adjacency matrix, list-backed adjacency list, vertex↔hyperedge
// incidence map) behind a single capability contract, so algorithms never
// see which backing is in play.
//
// Subpackages:
//
//	core/         — vertex/edge/hyperedge records, tagged attribute values,
//	                the four representation strategies
//	graphs/       — the graph types, edge policies, mutation observers
//	bfs/, dfs/    — traversals with hooks, lazy walkers, topological sort
//	paths/        — Dijkstra and Bellman-Ford shortest paths
//	connectivity/ — components, IsConnected, HasPath
//	mst/          — Kruskal and Prim minimum spanning forests
//	convert/      — type upgrades/downgrades and representation rebuilds
//	graphjson/    — JSON snapshot save/load
//	build/        — deterministic topology fixtures (paths, grids, random)
//
// Graphs are not internally synchronized: one logical mutator at a time,
// concurrent reads only while no mutation is in flight.
//
// Quick example:
//
//	g, _ := graphs.NewSimpleGraph()
//	_ = g.AddVertex("A")
//	_ = g.AddVertex("B")
//	_ = g.AddEdge("A", "B", graphs.WithWeight(2))
//	res, _ := paths.Dijkstra(g, "A")
package polygraph
