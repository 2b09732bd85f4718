package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/convert"
	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/graphs"
)

func buildSimple(t *testing.T) *graphs.SimpleGraph {
	t.Helper()
	g, err := graphs.NewSimpleGraph(graphs.WithAttrs(core.Attrs{"name": core.String("net")}))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("A", graphs.WithVertexAttrs(core.Attrs{"hub": core.Bool(true)})))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("C"))
	require.NoError(t, g.AddEdge("A", "B", graphs.WithWeight(2), graphs.WithEdgeAttrs(core.Attrs{"kind": core.String("trunk")})))
	require.NoError(t, g.AddEdge("B", "C", graphs.WithWeight(3)))

	return g
}

func TestSimpleToMultiLossless(t *testing.T) {
	g := buildSimple(t)

	m, err := convert.SimpleToMulti(g)
	require.NoError(t, err)

	assert.Equal(t, g.VertexCount(), m.VertexCount())
	assert.Equal(t, g.EdgeCount(), m.EdgeCount())
	assert.False(t, m.Directed())
	assert.True(t, core.Attrs{"name": core.String("net")}.Equal(m.Attrs()))

	v, err := m.Vertex("A")
	require.NoError(t, err)
	assert.True(t, core.Attrs{"hub": core.Bool(true)}.Equal(v.Attrs))

	e, err := m.Edge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.Weight)
	assert.True(t, core.Attrs{"kind": core.String("trunk")}.Equal(e.Attrs))

	// The upgrade unlocked parallels without touching the source.
	require.NoError(t, m.AddEdge("A", "B", graphs.WithWeight(9)))
	assert.Equal(t, 2, m.EdgeMultiplicity("A", "B"))
	assert.Equal(t, 2, g.EdgeCount(), "source stays unchanged")
}

func TestSimpleToPseudoAndMultiToPseudo(t *testing.T) {
	g := buildSimple(t)

	p, err := convert.SimpleToPseudo(g)
	require.NoError(t, err)
	require.NoError(t, p.AddEdge("A", "A"), "pseudograph accepts loops after upgrade")

	m, err := convert.SimpleToMulti(g)
	require.NoError(t, err)
	p2, err := convert.MultiToPseudo(m)
	require.NoError(t, err)
	assert.Equal(t, m.EdgeCount(), p2.EdgeCount())
	require.NoError(t, p2.AddEdge("B", "B"))
}

func TestMultiToSimpleMergeStrategies(t *testing.T) {
	m, err := graphs.NewMultigraph()
	require.NoError(t, err)
	require.NoError(t, m.AddVertex("A"))
	require.NoError(t, m.AddVertex("B"))
	require.NoError(t, m.AddEdge("A", "B", graphs.WithWeight(10), graphs.WithEdgeAttrs(core.Attrs{"idx": core.Number(0)})))
	require.NoError(t, m.AddEdge("A", "B", graphs.WithWeight(4), graphs.WithEdgeAttrs(core.Attrs{"idx": core.Number(1)})))
	require.NoError(t, m.AddEdge("A", "B", graphs.WithWeight(7)))

	cases := []struct {
		strategy convert.MergeStrategy
		want     float64
	}{
		{convert.MergeMin, 4},
		{convert.MergeMax, 10},
		{convert.MergeSum, 21},
		{convert.MergeMean, 7},
	}
	for _, tc := range cases {
		t.Run(tc.strategy.String(), func(t *testing.T) {
			s, err := convert.MultiToSimple(m, convert.WithMergeStrategy(tc.strategy))
			require.NoError(t, err)
			require.Equal(t, 1, s.EdgeCount())
			e, err := s.Edge("A", "B")
			require.NoError(t, err)
			assert.InDelta(t, tc.want, e.Weight, 1e-9)
		})
	}

	// Attributes ride along with the winning parallel.
	s, err := convert.MultiToSimple(m) // min is the default
	require.NoError(t, err)
	e, err := s.Edge("A", "B")
	require.NoError(t, err)
	assert.True(t, core.Attrs{"idx": core.Number(1)}.Equal(e.Attrs))
}

func TestMultiToSimpleUnknownStrategy(t *testing.T) {
	m, err := graphs.NewMultigraph()
	require.NoError(t, err)
	_, err = convert.MultiToSimple(m, convert.WithMergeStrategy(convert.MergeStrategy(42)))
	assert.ErrorIs(t, err, convert.ErrUnknownMergeStrategy)
}

func TestPseudoToSimpleDropsLoops(t *testing.T) {
	p, err := graphs.NewPseudograph()
	require.NoError(t, err)
	require.NoError(t, p.AddVertex("A"))
	require.NoError(t, p.AddVertex("B"))
	require.NoError(t, p.AddEdge("A", "A", graphs.WithWeight(1)))
	require.NoError(t, p.AddEdge("A", "B", graphs.WithWeight(5)))
	require.NoError(t, p.AddEdge("B", "A", graphs.WithWeight(2)), "reversed parallel joins the same undirected group")

	s, err := convert.PseudoToSimple(p)
	require.NoError(t, err)
	assert.Equal(t, 1, s.EdgeCount())
	assert.False(t, s.HasEdge("A", "A"))
	e, err := s.Edge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.Weight)
}

func TestNilInputs(t *testing.T) {
	_, err := convert.SimpleToMulti(nil)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
	_, err = convert.SimpleToPseudo(nil)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
	_, err = convert.MultiToPseudo(nil)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
	_, err = convert.MultiToSimple(nil)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
	_, err = convert.PseudoToSimple(nil)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
	_, err = convert.Rebuild(nil, core.Matrix)
	assert.ErrorIs(t, err, convert.ErrGraphNil)
}

// TestRebuildCrossStrategyEquivalence replays the same topology across the
// set-backed list and the dense matrix and checks the query surface agrees.
func TestRebuildCrossStrategyEquivalence(t *testing.T) {
	g := buildSimple(t)

	rebuilt, err := convert.Rebuild(g, core.Matrix)
	require.NoError(t, err)
	assert.Equal(t, core.Matrix, rebuilt.Strategy())
	assert.Equal(t, g.VertexCount(), rebuilt.VertexCount())
	assert.Equal(t, g.EdgeCount(), rebuilt.EdgeCount())
	assert.Equal(t, g.VertexIDs(), rebuilt.VertexIDs())
	for _, u := range g.VertexIDs() {
		for _, v := range g.VertexIDs() {
			assert.Equal(t, g.HasEdge(u, v), rebuilt.HasEdge(u, v), "HasEdge(%s,%s)", u, v)
		}
		want, err := g.Neighbors(u)
		require.NoError(t, err)
		got, err := rebuilt.Neighbors(u)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Neighbors(%s)", u)
	}

	// And back again onto the default list backing.
	back, err := convert.Rebuild(rebuilt, core.ListSimple)
	require.NoError(t, err)
	assert.Equal(t, core.ListSimple, back.Strategy())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
}

func TestRebuildRejectsUnsupportedStrategy(t *testing.T) {
	m, err := graphs.NewMultigraph()
	require.NoError(t, err)
	_, err = convert.Rebuild(m, core.Matrix)
	assert.ErrorIs(t, err, graphs.ErrStrategyNotSupported)
}

func TestRebuildHypergraph(t *testing.T) {
	h, err := graphs.NewHypergraph()
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, h.AddVertex(id))
	}
	_, err = h.AddHyperedge([]string{"A", "B", "C"}, graphs.WithWeight(2))
	require.NoError(t, err)

	rebuilt, err := convert.Rebuild(h, core.IncidenceMap)
	require.NoError(t, err)
	rh, ok := rebuilt.(*graphs.Hypergraph)
	require.True(t, ok)
	require.Len(t, rh.Hyperedges(), 1)
	assert.Equal(t, []string{"A", "B", "C"}, rh.Hyperedges()[0].Members)
	assert.Equal(t, 2.0, rh.Hyperedges()[0].Weight)

	_, err = convert.Rebuild(h, core.Matrix)
	assert.ErrorIs(t, err, graphs.ErrStrategyNotSupported)
}
