// Package mst computes minimum spanning trees of undirected weighted graphs
// via Kruskal (sorted edges + union-find) or Prim (binary min-heap).
//
// Both return the same Result and both span disconnected graphs as a
// minimum spanning forest: one tree per weakly connected component, so the
// edge count is |V| - (number of components). Self-loops never participate;
// among parallel edges only the lightest can be chosen. Ties break
// deterministically by (weight, source, target).
//
// Negative weights are fine for spanning trees; only directedness is
// rejected (ErrDirectedGraph).
package mst

import (
	"errors"

	"github.com/katalvlaran/polygraph/core"
)

// Sentinel errors for MST computation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDirectedGraph indicates the graph is directed; spanning trees are
	// defined over undirected graphs.
	ErrDirectedGraph = errors.New("mst: undirected graph required")
)

// Result holds a minimum spanning forest: the chosen edges (copies, safe to
// retain) and their total weight.
type Result struct {
	// Edges lists the chosen edges in the order the algorithm accepted them.
	Edges []core.Edge

	// Weight is the sum of the chosen edges' weights.
	Weight float64

	// Components is the number of trees in the forest (1 for a connected
	// graph, 0 for an empty one).
	Components int
}

// Spanning reports whether the forest is a single spanning tree covering
// every vertex.
func (r *Result) Spanning() bool { return r.Components <= 1 }
