package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
)

func TestTimes_NilGraph(t *testing.T) {
	_, err := dfs.Times[int, int](nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTimes_StartNotFound(t *testing.T) {
	g := core.New[int, int]()
	_, err := dfs.Times(g, core.NodeID(1))
	assert.ErrorIs(t, err, dfs.ErrStartNotFound)
}

func TestTimes_Sample(t *testing.T) {
	g, n, _ := buildSample(t)

	res, err := dfs.Times(g, n[0])
	require.NoError(t, err)

	// Clock values follow the deterministic event sequence.
	assert.Equal(t, map[core.NodeID]int{
		n[0]: 0, n[2]: 1, n[3]: 2, n[4]: 3, n[5]: 4, n[1]: 7,
	}, res.Discover)
	assert.Equal(t, map[core.NodeID]int{
		n[5]: 5, n[4]: 6, n[1]: 8, n[3]: 9, n[2]: 10, n[0]: 11,
	}, res.Finish)

	assert.Equal(t, core.NoNode, res.Parent[n[0]])
	assert.Equal(t, n[0], res.Parent[n[2]])
	assert.Equal(t, n[2], res.Parent[n[3]])
	assert.Equal(t, n[3], res.Parent[n[4]])
	assert.Equal(t, n[4], res.Parent[n[5]])
	assert.Equal(t, n[3], res.Parent[n[1]], "node 1 is reached through 3, not 0")
}

func TestTimes_UnreachedSentinel(t *testing.T) {
	g := core.New[int, int](core.WithDirected(true))
	a := g.AddNode(0)
	b := g.AddNode(1)
	_, err := g.AddEdge(b, a, 0) // only ingoing to a
	require.NoError(t, err)

	res, err := dfs.Times(g, a)
	require.NoError(t, err)
	assert.Equal(t, dfs.NoTime, res.Discover[b])
	assert.Equal(t, dfs.NoTime, res.Finish[b])
	_, hasParent := res.Parent[b]
	assert.False(t, hasParent)
}
