// Package bfs provides breadth-first search over a graphs.Graph, returning
// hop-count distances, parent links, and visit order.
//
// Two entry points share one option set:
//
//   - BFS  - eager traversal materializing a Result (Order, Depth, Parent)
//     with PathTo reconstruction.
//   - Walk - lazy, restartable iter.Seq2[string, int] of (vertex, depth)
//     pairs; breaking out of the range stops the traversal immediately.
//
// Edge weights are ignored (use package paths for weighted distances), and
// parallel edges contribute a neighbor once, so any graph type under any
// backing strategy traverses identically. Neighbor expansion is sorted, so
// visit order is deterministic for a given topology.
//
// Options: WithContext (cancellation), WithMaxDepth, WithFilterNeighbor,
// and the WithOnEnqueue / WithOnDequeue / WithOnVisit hooks.
package bfs
