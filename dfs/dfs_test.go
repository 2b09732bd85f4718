package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygraph/core"
	"github.com/katalvlaran/polygraph/dfs"
	"github.com/katalvlaran/polygraph/graphs"
)

// buildTree returns the undirected tree A-{B,C}, B-{D,E}.
func buildTree(t *testing.T) *graphs.SimpleGraph {
	t.Helper()
	g, err := graphs.NewSimpleGraph()
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "D"))
	require.NoError(t, g.AddEdge("B", "E"))

	return g
}

func TestDFSPreorderDeterministic(t *testing.T) {
	g := buildTree(t)

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	// Ascending neighbor order: A, then B's subtree fully, then C.
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, res.Order)
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["E"])
	_, isRoot := res.Parent["A"]
	assert.False(t, isRoot)
}

func TestDFSInvalidInput(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildTree(t)
	_, err = dfs.DFS(g, "ghost")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = dfs.DFS(g, "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFSMaxDepth(t *testing.T) {
	g := buildTree(t)

	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	_, reached := res.Depth["D"]
	assert.False(t, reached)
}

func TestDFSHooksFireInOrder(t *testing.T) {
	g := buildTree(t)
	var visits, exits []string

	_, err := dfs.DFS(g, "A",
		dfs.WithOnVisit(func(id string, _ int) error {
			visits = append(visits, id)

			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			exits = append(exits, id)

			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, visits)
	assert.Equal(t, []string{"D", "E", "B", "C", "A"}, exits,
		"postorder finishes children before parents")
}

func TestDFSHookAbort(t *testing.T) {
	g := buildTree(t)
	sentinel := errors.New("enough")

	_, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return sentinel
		}

		return nil
	}))
	assert.ErrorIs(t, err, sentinel)
}

func TestDFSContextCancellation(t *testing.T) {
	g := buildTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFSFullTraversalCoversComponents(t *testing.T) {
	g, err := graphs.NewSimpleGraph()
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "X", "Y"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("X", "Y"))

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "X", "Y"}, res.Order)
	assert.Equal(t, 0, res.Depth["X"], "each component roots a fresh tree")
}

func TestDFSDeepChainNoStackOverflow(t *testing.T) {
	g, err := graphs.NewSimpleGraph(graphs.WithDirected(true))
	require.NoError(t, err)

	const n = 200_000
	prev := "v0000000"
	require.NoError(t, g.AddVertex(prev))
	for i := 1; i < n; i++ {
		id := "v" + padInt(i)
		require.NoError(t, g.AddVertex(id))
		require.NoError(t, g.AddEdge(prev, id))
		prev = id
	}

	res, err := dfs.DFS(g, "v0000000")
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[prev])
}

// padInt renders i as a fixed-width decimal so lexicographic order matches
// numeric order.
func padInt(i int) string {
	digits := []byte{'0', '0', '0', '0', '0', '0', '0'}
	for pos := len(digits) - 1; i > 0 && pos >= 0; pos-- {
		digits[pos] = byte('0' + i%10)
		i /= 10
	}

	return string(digits)
}

func TestDFSPathTo(t *testing.T) {
	g := buildTree(t)
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E"}, path)

	_, err = res.PathTo("ghost")
	assert.Error(t, err)
}

func TestWalkPreorderAndRestart(t *testing.T) {
	g := buildTree(t)
	seq, err := dfs.Walk(g, "A")
	require.NoError(t, err)

	var first []string
	for id := range seq {
		first = append(first, id)
	}
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, first)

	var second []string
	for id, depth := range seq {
		second = append(second, id)
		if depth == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B", "D"}, second, "break stops the second run early")
}

func TestTopologicalSort(t *testing.T) {
	g, err := graphs.NewSimpleGraph(graphs.WithDirected(true))
	require.NoError(t, err)
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "D"))
	require.NoError(t, g.AddEdge("C", "D"))

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)

	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.Source], pos[e.Target], "%s must precede %s", e.Source, e.Target)
	}
}

func TestTopologicalSortRejectsCyclesAndUndirected(t *testing.T) {
	g, err := graphs.NewSimpleGraph(graphs.WithDirected(true))
	require.NoError(t, err)
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	und, err := graphs.NewSimpleGraph()
	require.NoError(t, err)
	_, err = dfs.TopologicalSort(und)
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)

	_, err = dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
