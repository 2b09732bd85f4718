package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/core"
)

func mustMulti(t *testing.T, opts ...GraphOption) *Multigraph {
	t.Helper()
	g, err := NewMultigraph(opts...)
	require.NoError(t, err)

	return g
}

func mustPseudo(t *testing.T, opts ...GraphOption) *Pseudograph {
	t.Helper()
	g, err := NewPseudograph(opts...)
	require.NoError(t, err)

	return g
}

func TestMultigraphAllowsParallels(t *testing.T) {
	g := mustMulti(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	require.NoError(t, g.AddEdge("A", "B", WithWeight(10)))
	require.NoError(t, g.AddEdge("A", "B", WithWeight(5)))
	require.NoError(t, g.AddEdge("B", "A", WithWeight(7)))

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.EdgeMultiplicity("A", "B"),
		"EdgesBetween follows the query direction's slot")
	assert.Equal(t, 0, g.EdgeMultiplicity("A", "ghost"))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, nbrs, "neighbors deduplicate under parallels")
}

func TestMultigraphRejectsSelfLoop(t *testing.T) {
	g := mustMulti(t)
	require.NoError(t, g.AddVertex("A"))

	assert.ErrorIs(t, g.AddEdge("A", "A"), ErrSelfLoop)
}

func TestMultigraphRejectsSingleEdgeStrategies(t *testing.T) {
	_, err := NewMultigraph(WithRepresentation(core.ListSimple))
	assert.ErrorIs(t, err, ErrStrategyNotSupported)
	_, err = NewMultigraph(WithRepresentation(core.Matrix))
	assert.ErrorIs(t, err, ErrStrategyNotSupported)
}

func TestPseudographAllowsEverything(t *testing.T) {
	g := mustPseudo(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	require.NoError(t, g.AddEdge("A", "A"))
	require.NoError(t, g.AddEdge("A", "A"), "parallel self-loops are legal")
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))

	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasSelfLoop("A"))
	assert.False(t, g.HasSelfLoop("B"))

	n, err := g.SelfLoopCount("A")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, g.CountSelfLoops())
}

func TestPseudographTotalDegree(t *testing.T) {
	g := mustPseudo(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "A"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))

	// One loop (counts 2) plus two incident edges.
	deg, err := g.TotalDegree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, deg)

	deg, err = g.TotalDegree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.TotalDegree("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRemoveAllSelfLoops(t *testing.T) {
	g := mustPseudo(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "A"))
	require.NoError(t, g.AddEdge("A", "A"))
	require.NoError(t, g.AddEdge("B", "B"))
	require.NoError(t, g.AddEdge("A", "B"))

	assert.Equal(t, 3, g.RemoveAllSelfLoops())
	assert.Equal(t, 0, g.CountSelfLoops())
	assert.Equal(t, 1, g.EdgeCount(), "the non-loop edge survives")
	assert.Equal(t, 0, g.RemoveAllSelfLoops(), "idempotent on a loop-free graph")
}

func TestNeighborsIncludeSelfUnderLoop(t *testing.T) {
	g := mustPseudo(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddEdge("A", "A"))

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nbrs, "a loop makes the vertex its own neighbor")
}

func TestRemoveEdgeFIFOAmongParallels(t *testing.T) {
	g := mustMulti(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", WithWeight(10)))
	require.NoError(t, g.AddEdge("A", "B", WithWeight(5)))

	require.NoError(t, g.RemoveEdge("A", "B"))
	es := g.EdgesBetween("A", "B")
	require.Len(t, es, 1)
	assert.Equal(t, 5.0, es[0].Weight, "the oldest parallel goes first")

	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}
