package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIncidenceMap(t *testing.T, ids ...string) *HypergraphIncidenceMap {
	t.Helper()
	h := NewHypergraphIncidenceMap()
	for _, id := range ids {
		require.NoError(t, h.AddVertex(&Vertex{ID: id}))
	}

	return h
}

func TestAddHyperedgeGeneratesUniqueIDs(t *testing.T) {
	h := newIncidenceMap(t, "A", "B", "C")

	he1, err := h.AddHyperedge([]string{"A", "B", "C"}, 1, nil)
	require.NoError(t, err)
	he2, err := h.AddHyperedge([]string{"A", "B"}, 2, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, he1.ID)
	assert.NotEqual(t, he1.ID, he2.ID)
	assert.Equal(t, 2, h.EdgeCount())
}

func TestAddHyperedgeValidation(t *testing.T) {
	h := newIncidenceMap(t, "A")

	_, err := h.AddHyperedge(nil, 1, nil)
	assert.ErrorIs(t, err, ErrNoMembers)

	_, err = h.AddHyperedge([]string{"A", "ghost"}, 1, nil)
	assert.ErrorIs(t, err, ErrVertexNotFound)
	assert.Equal(t, 0, h.EdgeCount(), "failed add must not leave partial state")
}

func TestHyperedgeMembersDeduplicatedAndSorted(t *testing.T) {
	h := newIncidenceMap(t, "A", "B", "C")

	he, err := h.AddHyperedge([]string{"C", "A", "C", "B"}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, he.Members)

	singleton, err := h.AddHyperedge([]string{"A"}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, singleton.Size())
}

func TestIncidenceNeighborsAreCoMembers(t *testing.T) {
	h := newIncidenceMap(t, "A", "B", "C", "D")
	_, err := h.AddHyperedge([]string{"A", "B", "C"}, 1, nil)
	require.NoError(t, err)
	_, err = h.AddHyperedge([]string{"C", "D"}, 1, nil)
	require.NoError(t, err)

	nbrs, err := h.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, nbrs)

	nbrs, err = h.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs, "the vertex itself is excluded")
}

func TestRemoveVertexStripsMemberships(t *testing.T) {
	h := newIncidenceMap(t, "A", "B", "C")
	big, err := h.AddHyperedge([]string{"A", "B", "C"}, 1, nil)
	require.NoError(t, err)
	pair, err := h.AddHyperedge([]string{"A", "B"}, 1, nil)
	require.NoError(t, err)

	require.NoError(t, h.RemoveVertex("C"))

	got, err := h.HyperedgeByID(big.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got.Members, "member list shrinks in place")
	_, err = h.HyperedgeByID(pair.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, h.EdgeCount())
}

func TestRemoveVertexDropsEmptiedHyperedge(t *testing.T) {
	h := newIncidenceMap(t, "A", "B")
	lone, err := h.AddHyperedge([]string{"A"}, 1, nil)
	require.NoError(t, err)
	_, err = h.AddHyperedge([]string{"A", "B"}, 1, nil)
	require.NoError(t, err)

	require.NoError(t, h.RemoveVertex("A"))

	_, err = h.HyperedgeByID(lone.ID)
	assert.ErrorIs(t, err, ErrEdgeNotFound)
	assert.Equal(t, 1, h.EdgeCount(), "the pair survives with B as sole member")
}

func TestRemoveHyperedgeClearsIncidence(t *testing.T) {
	h := newIncidenceMap(t, "A", "B")
	he, err := h.AddHyperedge([]string{"A", "B"}, 1, nil)
	require.NoError(t, err)

	require.NoError(t, h.RemoveHyperedge(he.ID))

	assert.Equal(t, 0, h.EdgeCount())
	incident, err := h.IncidentHyperedges("A")
	require.NoError(t, err)
	assert.Empty(t, incident)
	assert.ErrorIs(t, h.RemoveHyperedge(he.ID), ErrEdgeNotFound)
}

func TestBinaryEdgeViewOverHyperedges(t *testing.T) {
	h := newIncidenceMap(t, "A", "B", "C")
	require.NoError(t, h.AddEdge(&Edge{Source: "A", Target: "B", Weight: 4}))
	_, err := h.AddHyperedge([]string{"A", "B", "C"}, 9, nil)
	require.NoError(t, err)

	assert.True(t, h.HasEdge("A", "B"))
	assert.True(t, h.HasEdge("B", "C"), "co-membership in a hyperedge counts as connection")

	es := h.EdgesBetween("A", "B")
	require.Len(t, es, 2, "the pair hyperedge plus the triple both connect A and B")
	assert.Equal(t, 4.0, es[0].Weight)
	assert.Equal(t, 9.0, es[1].Weight)

	// RemoveEdge targets only the exact-pair hyperedge.
	require.NoError(t, h.RemoveEdge("B", "A"))
	es = h.EdgesBetween("A", "B")
	require.Len(t, es, 1)
	assert.Equal(t, 9.0, es[0].Weight)
	assert.ErrorIs(t, h.RemoveEdge("A", "B"), ErrEdgeNotFound)
}

func TestCliqueExpansionEdges(t *testing.T) {
	h := newIncidenceMap(t, "A", "B", "C")
	_, err := h.AddHyperedge([]string{"A", "B", "C"}, 2, nil)
	require.NoError(t, err)
	_, err = h.AddHyperedge([]string{"A"}, 5, nil)
	require.NoError(t, err)

	es := h.Edges()
	require.Len(t, es, 4, "triple expands to 3 pairs, singleton to a self-loop")
	assert.Equal(t, "A", es[0].Source)
	assert.Equal(t, "B", es[0].Target)
	assert.Equal(t, 2.0, es[0].Weight)
	assert.Equal(t, es[3].Source, es[3].Target, "singleton becomes a self-loop")
	assert.Equal(t, 5.0, es[3].Weight)

	assert.Equal(t, 2, h.EdgeCount(), "EdgeCount reports hyperedges, not clique pairs")
}

func TestSelfPairEdgeStoredAsSingleton(t *testing.T) {
	h := newIncidenceMap(t, "A")
	require.NoError(t, h.AddEdge(&Edge{Source: "A", Target: "A", Weight: 1}))

	assert.True(t, h.HasEdge("A", "A"))
	hes := h.Hyperedges()
	require.Len(t, hes, 1)
	assert.Equal(t, []string{"A"}, hes[0].Members)
}
