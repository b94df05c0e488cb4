package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphforge/graphforge/connectivity"
	"github.com/graphforge/graphforge/core"
)

func build(t *testing.T, directed bool, vertices []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, id := range vertices {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range edges {
		_, err := g.AddUnweightedEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func TestWeak_TrivialGraphs(t *testing.T) {
	assert.True(t, connectivity.IsWeaklyConnected(core.NewGraph()))
	assert.True(t, connectivity.IsWeaklyConnected(build(t, false, []string{"A"}, nil)))
}

func TestWeak_ConnectedAndNot(t *testing.T) {
	path := build(t, false, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	assert.True(t, connectivity.IsWeaklyConnected(path))

	split := build(t, false, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"C", "D"}})
	assert.False(t, connectivity.IsWeaklyConnected(split))
}

func TestWeak_DirectedEdgesTreatedBidirectional(t *testing.T) {
	// A→B←C is weakly connected even though nothing is reachable from A
	// beyond B.
	g := build(t, true, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"C", "B"}})
	assert.True(t, connectivity.IsWeaklyConnected(g))
}

func TestStrong_RequiresDirected(t *testing.T) {
	g := build(t, false, []string{"A", "B"}, [][2]string{{"A", "B"}})
	_, err := connectivity.IsStronglyConnected(g)
	assert.ErrorIs(t, err, connectivity.ErrUndirectedGraph)
}

// A directed 2-cycle is strongly connected; a single directed edge
// alone is not.
func TestStrong_TwoCycleVersusSingleEdge(t *testing.T) {
	cycle := build(t, true, []string{"A", "B"}, [][2]string{{"A", "B"}, {"B", "A"}})
	ok, err := connectivity.IsStronglyConnected(cycle)
	require.NoError(t, err)
	assert.True(t, ok)

	arrow := build(t, true, []string{"A", "B"}, [][2]string{{"A", "B"}})
	ok, err = connectivity.IsStronglyConnected(arrow)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStrong_LargerCycleWithChord(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"B", "D"}})
	ok, err := connectivity.IsStronglyConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	// Cutting the return edge breaks strong connectivity.
	g.RemoveEdge("D-A")
	ok, err = connectivity.IsStronglyConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIgnoringIsolated_Undirected(t *testing.T) {
	// Connected pair plus two isolated vertices.
	g := build(t, false, []string{"A", "B", "X", "Y"}, [][2]string{{"A", "B"}})
	assert.False(t, connectivity.IsWeaklyConnected(g))
	assert.True(t, connectivity.IsWeaklyConnectedIgnoringIsolated(g))
	assert.True(t, connectivity.IsConnectedIgnoringIsolated(g))

	// Edgeless graph: nothing to connect.
	edgeless := build(t, false, []string{"A", "B"}, nil)
	assert.True(t, connectivity.IsWeaklyConnectedIgnoringIsolated(edgeless))
}

func TestIgnoringIsolated_DirectedMutualReachability(t *testing.T) {
	// 2-cycle plus isolated vertex: connected once isolation is ignored.
	g := build(t, true, []string{"A", "B", "X"}, [][2]string{{"A", "B"}, {"B", "A"}})
	assert.True(t, connectivity.IsConnectedIgnoringIsolated(g))

	// A→B only: reachable from A but not mutually, so still disconnected.
	arrow := build(t, true, []string{"A", "B", "X"}, [][2]string{{"A", "B"}})
	assert.False(t, connectivity.IsConnectedIgnoringIsolated(arrow))
}
