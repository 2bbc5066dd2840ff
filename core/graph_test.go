package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/core"
)

func TestAddNode_SequentialHandles(t *testing.T) {
	g := core.New[string, int]()
	const k = 5
	for i := 0; i < k; i++ {
		id := g.AddNode("n")
		assert.Equal(t, core.NodeID(i), id)
	}
	assert.Equal(t, k, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestNodeWeight_AccessAndMutate(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("alpha")

	w, err := g.NodeWeight(a)
	require.NoError(t, err)
	assert.Equal(t, "alpha", w)

	require.NoError(t, g.SetNodeWeight(a, "beta"))
	w, err = g.NodeWeight(a)
	require.NoError(t, err)
	assert.Equal(t, "beta", w)
}

func TestNodeWeight_InvalidHandle(t *testing.T) {
	g := core.New[string, int]()
	g.AddNode("only")

	_, err := g.NodeWeight(core.NodeID(7))
	assert.ErrorIs(t, err, core.ErrInvalidNode)

	_, err = g.NodeWeight(core.NoNode)
	assert.ErrorIs(t, err, core.ErrInvalidNode)

	assert.ErrorIs(t, g.SetNodeWeight(core.NodeID(7), "x"), core.ErrInvalidNode)
}

func TestAddEdge_EndpointsAndCount(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")

	e, err := g.AddEdge(a, b, 42)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID(0), e)
	assert.Equal(t, 1, g.EdgeCount())

	src, dst, err := g.EdgeEndpoints(e)
	require.NoError(t, err)
	assert.Equal(t, a, src)
	assert.Equal(t, b, dst)

	w, err := g.EdgeWeight(e)
	require.NoError(t, err)
	assert.Equal(t, 42, w)

	require.NoError(t, g.SetEdgeWeight(e, 7))
	w, err = g.EdgeWeight(e)
	require.NoError(t, err)
	assert.Equal(t, 7, w)
}

func TestAddEdge_InvalidEndpoint_NoPartialMutation(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("a")

	// Bad target: counts and a's chains must be untouched.
	e, err := g.AddEdge(a, core.NodeID(9), 1)
	assert.ErrorIs(t, err, core.ErrInvalidNode)
	assert.Equal(t, core.NoEdge, e)
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, core.NoEdge, g.FirstIncident(a, core.Outgoing))
	assert.Equal(t, core.NoEdge, g.FirstIncident(a, core.Ingoing))

	// Bad source behaves the same.
	_, err = g.AddEdge(core.NoNode, a, 1)
	assert.ErrorIs(t, err, core.ErrInvalidNode)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestEdgeWeight_InvalidHandle(t *testing.T) {
	g := core.New[string, int]()
	_, err := g.EdgeWeight(core.EdgeID(0))
	assert.ErrorIs(t, err, core.ErrInvalidEdge)

	_, _, err = g.EdgeEndpoints(core.NoEdge)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)

	assert.ErrorIs(t, g.SetEdgeWeight(core.EdgeID(3), 0), core.ErrInvalidEdge)
}

func TestClear_ResetsAndReissuesHandleZero(t *testing.T) {
	g := core.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	_, err := g.AddEdge(a, b, 1)
	require.NoError(t, err)

	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	// Old handles are dead...
	_, err = g.NodeWeight(a)
	assert.ErrorIs(t, err, core.ErrInvalidNode)

	// ...and issuance restarts at 0 with clean chains.
	id := g.AddNode("fresh")
	assert.Equal(t, core.NodeID(0), id)
	assert.Equal(t, core.NoEdge, g.FirstIncident(id, core.Outgoing))
}

func TestDirectedFlag(t *testing.T) {
	assert.False(t, core.New[int, int]().Directed())
	assert.True(t, core.New[int, int](core.WithDirected(true)).Directed())
}

func TestWithCapacity_DoesNotAffectCounts(t *testing.T) {
	g := core.New[int, int](core.WithCapacity(64, 128))
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, core.NodeID(0), g.AddNode(0))
}

func TestDirection_OppositeAndIndex(t *testing.T) {
	assert.Equal(t, core.Ingoing, core.Outgoing.Opposite())
	assert.Equal(t, core.Outgoing, core.Ingoing.Opposite())
	assert.Equal(t, 0, core.Outgoing.Index())
	assert.Equal(t, 1, core.Ingoing.Index())
	assert.Equal(t, "Outgoing", core.Outgoing.String())
	assert.Equal(t, "Ingoing", core.Ingoing.String())
}

func TestHandle_IndexProjection(t *testing.T) {
	g := core.New[int, int]()
	g.AddNode(0)
	n := g.AddNode(0)
	assert.Equal(t, 1, n.Index())
}
