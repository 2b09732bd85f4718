// Package paths provides single-source weighted shortest-path algorithms
// over a graphs.Graph, sharing one Result shape (Dist, Prev, PathTo).
//
//   - Dijkstra    - non-negative weights, O((V+E) log V); negative weights
//     rejected up front with ErrNegativeWeight before any relaxation.
//   - BellmanFord - negative weights allowed, O(V·E); a reachable negative
//     cycle fails with ErrNegativeCycle naming the cycle's vertices.
//
// Both relax every parallel edge between a pair, so on multigraphs the
// lightest parallel determines the distance. Unreachable vertices are absent
// from Result.Dist; there are no infinity placeholders. Dijkstra's priority
// queue breaks distance ties by insertion order, keeping the settle order
// deterministic for a given topology.
//
// Options: WithContext (cancellation) and WithMaxDistance (Dijkstra
// exploration cap).
package paths
