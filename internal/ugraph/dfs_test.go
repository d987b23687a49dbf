package ugraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraverseDFS_VisitsEachNodeOnce(t *testing.T) {
	g := New(5)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	var order []int
	g.TraverseDFS(0, func(n int) { order = append(order, n) })

	require.Len(t, order, 5)
	seen := map[int]bool{}
	for _, n := range order {
		require.False(t, seen[n], "node %d visited twice", n)
		seen[n] = true
	}
	require.Equal(t, 0, order[0])
}

func TestTraverseDFS_DisconnectedOnlyReachesComponent(t *testing.T) {
	g := New(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	// nodes 2, 3 are isolated from 0,1.

	var order []int
	g.TraverseDFS(0, func(n int) { order = append(order, n) })
	require.ElementsMatch(t, []int{0, 1}, order)
}

func TestTraverseDFS_StorageOrderTieBreak(t *testing.T) {
	g := New(4)
	// Node 0 has two neighbors, 1 then 2, added in that storage order.
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	var order []int
	g.TraverseDFS(0, func(n int) { order = append(order, n) })
	require.Equal(t, []int{0, 1, 2, 3}, order)
}
