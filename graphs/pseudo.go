package graphs

import (
	"fmt"

	"github.com/katalvlaran/polygraph/core"
)

// Pseudograph is the fully permissive binary type: self-loops and parallel
// edges (parallel self-loops included) are all legal. Backed by the
// list-backed strategy, the only shape that can hold them.
type Pseudograph struct {
	base
}

// NewPseudograph constructs an empty pseudograph.
// Fails with ErrStrategyNotSupported for any strategy other than ListMulti.
func NewPseudograph(opts ...GraphOption) (*Pseudograph, error) {
	b, err := newBase(
		core.ListMulti,
		[]core.StrategyKind{core.ListMulti},
		edgePolicy{AllowLoops: true, AllowParallel: true},
		opts,
	)
	if err != nil {
		return nil, err
	}

	return &Pseudograph{base: b}, nil
}

// EdgeMultiplicity returns the number of parallel edges between the pair.
func (g *Pseudograph) EdgeMultiplicity(source, target string) int {
	return len(g.rep.EdgesBetween(source, target))
}

// HasSelfLoop reports whether the vertex carries at least one self-loop.
// Complexity: O(1)
func (g *Pseudograph) HasSelfLoop(id string) bool {
	return g.rep.HasEdge(id, id)
}

// SelfLoopCount returns the number of self-loops on the vertex.
// Fails with core.ErrVertexNotFound.
func (g *Pseudograph) SelfLoopCount(id string) (int, error) {
	if !g.rep.HasVertex(id) {
		return 0, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
	}

	return len(g.rep.EdgesBetween(id, id)), nil
}

// CountSelfLoops returns the total number of self-loops in the graph.
// Complexity: O(E)
func (g *Pseudograph) CountSelfLoops() int {
	n := 0
	for _, e := range g.rep.Edges() {
		if e.Source == e.Target {
			n++
		}
	}

	return n
}

// TotalDegree returns the vertex degree with each self-loop contributing 2
// and every other incident edge contributing 1.
// Fails with core.ErrVertexNotFound.
// Complexity: O(E)
func (g *Pseudograph) TotalDegree(id string) (int, error) {
	if !g.rep.HasVertex(id) {
		return 0, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
	}
	deg := 0
	for _, e := range g.rep.Edges() {
		switch {
		case e.Source == id && e.Target == id:
			deg += 2
		case e.Source == id || e.Target == id:
			deg++
		}
	}

	return deg, nil
}

// RemoveAllSelfLoops deletes every self-loop in the graph and returns how
// many were removed. Each removal fires an edge_removed event.
// Complexity: O(E) per loop removed.
func (g *Pseudograph) RemoveAllSelfLoops() int {
	removed := 0
	for _, e := range g.rep.Edges() {
		if e.Source != e.Target {
			continue
		}
		if err := g.RemoveEdge(e.Source, e.Target); err == nil {
			removed++
		}
	}

	return removed
}
