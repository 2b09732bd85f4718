package graphs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/core"
)

func mustSimple(t *testing.T, opts ...GraphOption) *SimpleGraph {
	t.Helper()
	g, err := NewSimpleGraph(opts...)
	require.NoError(t, err)

	return g
}

func TestSimpleGraphRejectsSelfLoop(t *testing.T) {
	g := mustSimple(t)
	require.NoError(t, g.AddVertex("A"))

	err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, ErrSelfLoop)
	assert.Equal(t, 0, g.EdgeCount(), "rejected edge must not change the graph")
}

func TestSimpleGraphRejectsDuplicateEdge(t *testing.T) {
	g := mustSimple(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B"))

	assert.ErrorIs(t, g.AddEdge("A", "B"), ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge("B", "A"), ErrDuplicateEdge,
		"reversed pair is the same undirected edge")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestSimpleGraphDirectedAllowsBothOrientations(t *testing.T) {
	g := mustSimple(t, WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"), "opposite orientation is a distinct directed edge")
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdgeRequiresExistingEndpoints(t *testing.T) {
	g := mustSimple(t)
	require.NoError(t, g.AddVertex("A"))

	assert.ErrorIs(t, g.AddEdge("A", "ghost"), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("ghost", "A"), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("", "A"), core.ErrEmptyVertexID)
}

func TestEdgeDefaultsAndOptions(t *testing.T) {
	g := mustSimple(t)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("C"))

	require.NoError(t, g.AddEdge("A", "B"))
	e, err := g.Edge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.DefaultWeight, e.Weight)

	require.NoError(t, g.AddEdge("B", "C",
		WithWeight(2.5),
		WithEdgeAttrs(core.Attrs{"label": core.String("road")})))
	e, err = g.Edge("C", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.5, e.Weight)
	label, ok := e.Attrs["label"].AsString()
	require.True(t, ok)
	assert.Equal(t, "road", label)
}

func TestVertexAttrsAndGraphAttrs(t *testing.T) {
	g := mustSimple(t, WithAttrs(core.Attrs{"name": core.String("net")}))
	require.NoError(t, g.AddVertex("A", WithVertexAttrs(core.Attrs{"x": core.Number(1)})))

	v, err := g.Vertex("A")
	require.NoError(t, err)
	x, ok := v.Attrs["x"].AsNumber()
	require.True(t, ok)
	assert.Equal(t, 1.0, x)

	name, ok := g.Attrs()["name"].AsString()
	require.True(t, ok)
	assert.Equal(t, "net", name)
}

func TestSimpleGraphPolicyHoldsUnderEveryStrategy(t *testing.T) {
	for _, kind := range []core.StrategyKind{core.ListSimple, core.Matrix, core.ListMulti} {
		t.Run(kind.String(), func(t *testing.T) {
			g := mustSimple(t, WithRepresentation(kind))
			require.NoError(t, g.AddVertex("A"))
			require.NoError(t, g.AddVertex("B"))
			require.NoError(t, g.AddEdge("A", "B", WithWeight(3)))

			assert.ErrorIs(t, g.AddEdge("A", "A"), ErrSelfLoop)
			assert.ErrorIs(t, g.AddEdge("B", "A"), ErrDuplicateEdge)
			assert.Equal(t, kind, g.Strategy())

			nbrs, err := g.Neighbors("A")
			require.NoError(t, err)
			assert.Equal(t, []string{"B"}, nbrs)
		})
	}
}

func TestSimpleGraphRejectsIncidenceMap(t *testing.T) {
	_, err := NewSimpleGraph(WithRepresentation(core.IncidenceMap))
	assert.ErrorIs(t, err, ErrStrategyNotSupported)
}

func TestRemoveVertexCascades(t *testing.T) {
	g := mustSimple(t)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

func TestDegree(t *testing.T) {
	g := mustSimple(t)
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	deg, err = g.Degree("C")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = g.Degree("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
