package graphs

import "github.com/katalvlaran/polygraph/core"

// Multigraph permits parallel edges between the same pair but still forbids
// self-loops. Only the list-backed strategy can hold parallels, so it is the
// sole accepted representation.
type Multigraph struct {
	base
}

// NewMultigraph constructs an empty multigraph.
// Fails with ErrStrategyNotSupported for any strategy other than ListMulti.
func NewMultigraph(opts ...GraphOption) (*Multigraph, error) {
	b, err := newBase(
		core.ListMulti,
		[]core.StrategyKind{core.ListMulti},
		edgePolicy{AllowLoops: false, AllowParallel: true},
		opts,
	)
	if err != nil {
		return nil, err
	}

	return &Multigraph{base: b}, nil
}

// EdgeMultiplicity returns the number of parallel edges between the pair
// (0 when disconnected or either vertex is absent).
// Complexity: O(k) where k is the pair's multiplicity.
func (g *Multigraph) EdgeMultiplicity(source, target string) int {
	return len(g.rep.EdgesBetween(source, target))
}
