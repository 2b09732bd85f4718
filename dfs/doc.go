// Package dfs provides iterative depth-first search over a graphs.Graph.
//
// The traversal runs over an explicit frame stack, so arbitrarily deep
// graphs cannot overflow the goroutine stack, while sorted neighbor
// expansion keeps the discovery order deterministic and identical to what
// ascending-order recursion would produce.
//
// Entry points:
//
//   - DFS  - eager traversal materializing a Result (preorder Order, Depth,
//     Parent) with PathTo; WithFullTraversal covers disconnected components.
//   - Walk - lazy, restartable iter.Seq2[string, int] of (vertex, depth)
//     pairs in discovery order.
//   - TopologicalSort - reverse-postorder ordering of a directed acyclic
//     graph; cycles fail with ErrCycleDetected.
//
// Options: WithContext, WithMaxDepth, WithFilterNeighbor, WithFullTraversal,
// and the WithOnVisit (preorder) / WithOnExit (postorder) hooks.
package dfs
