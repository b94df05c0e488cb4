package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphforge/graphforge/core"
)

func TestAddVertex_ExplicitAndAuto(t *testing.T) {
	g := core.NewGraph()

	// Auto names follow the allocator sequence.
	assert.Equal(t, "A", g.AddAutoVertex())
	assert.Equal(t, "B", g.AddAutoVertex())

	// Explicit names are honored and subsequently skipped by the allocator.
	require.NoError(t, g.AddVertex("C"))
	assert.Equal(t, "D", g.AddAutoVertex())

	// Duplicates are rejected, generated or explicit alike.
	assert.ErrorIs(t, g.AddVertex("A"), core.ErrDuplicateID)
	assert.ErrorIs(t, g.AddVertex("C"), core.ErrDuplicateID)
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
}

func TestAddEdge_RequiresEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	_, err := g.AddEdge("A", "Z", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge("", "A", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddEdge_IDDerivation(t *testing.T) {
	g := core.NewGraph() // undirected
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	id1, err := g.AddEdge("B", "A", 2)
	require.NoError(t, err)
	assert.Equal(t, "A-B", id1, "undirected pairs normalize lexicographically")

	id2, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	assert.Equal(t, "A-B#2", id2)

	// The stored record keeps its original orientation.
	e, err := g.EdgeByID(id1)
	require.NoError(t, err)
	assert.Equal(t, "B", e.From)
	assert.Equal(t, "A", e.To)
}

func TestAddEdge_DirectedIndependentOrientations(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	fwd, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	rev, err := g.AddEdge("B", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, "A-B", fwd)
	assert.Equal(t, "B-A", rev)

	assert.True(t, g.HasEdgeBetween("A", "B"))
	g.RemoveEdge(rev)
	assert.False(t, g.HasEdgeBetween("B", "A"))
	assert.True(t, g.HasEdgeBetween("A", "B"))
}

func TestSelfLoopAndNegativeWeights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	loop, err := g.AddEdge("A", "A", -2.5)
	require.NoError(t, err)
	assert.Equal(t, "A-A", loop)

	e, err := g.EdgeByID(loop)
	require.NoError(t, err)
	assert.Equal(t, -2.5, e.Weight)
	assert.True(t, e.Weighted)
}

func TestUnweightedEdgeAndSetWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	id, err := g.AddUnweightedEdge("A", "B")
	require.NoError(t, err)
	e, err := g.EdgeByID(id)
	require.NoError(t, err)
	assert.False(t, e.Weighted)

	require.NoError(t, g.SetEdgeWeight(id, 7))
	assert.True(t, e.Weighted)
	assert.Equal(t, 7.0, e.Weight)

	assert.ErrorIs(t, g.SetEdgeWeight("nope", 1), core.ErrEdgeNotFound)
}

func TestRemoveVertex_CascadesAndReleasesNames(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("C"))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	g.RemoveVertex("B")
	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	assert.Zero(t, g.EdgeCount(), "incident edges are removed with the vertex")

	// The name is released: both the allocator and explicit re-adding reuse it.
	assert.Equal(t, "B", g.AddAutoVertex())

	// The edge keys were released too: the canonical key comes back bare.
	id, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	assert.Equal(t, "A-B", id)

	// Idempotent deletes.
	g.RemoveVertex("missing")
	g.RemoveEdge("missing")
}

func TestEnumerationOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"Z", "M", "A"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("Z", "M", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "M", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"Z", "M", "A"}, g.Vertices(), "insertion order, not sorted")

	ids := make([]string, 0, 2)
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"M-Z", "A-M"}, ids)
}

func TestNeighbors_DirectionalityAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 1)
	require.NoError(t, err)

	out, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, out, 1, "directed neighbors are outgoing only")
	assert.Equal(t, "B", out[0].To)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_IndependentAllocators(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	// Parallel-edge counters were carried over: the next parallel edge in
	// the clone gets the right ordinal.
	id, err := c.AddEdge("A", "B", 5)
	require.NoError(t, err)
	assert.Equal(t, "A-B#2", id)

	// Mutating the clone leaves the original untouched.
	c.RemoveVertex("A")
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAdjacencyHelpers(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "B", 1) // directed self-loop
	require.NoError(t, err)

	adj := core.AdjacencyList(g)
	assert.Len(t, adj["A"], 1)
	assert.Len(t, adj["B"], 1, "self-loop listed once under its vertex")
	assert.Empty(t, adj["C"], "isolated vertices still get an entry")

	sym := core.SymmetricAdjacencyList(g)
	assert.Len(t, sym["B"], 2, "direction ignored: incoming A-B plus loop")

	deg := core.DegreeMap(g)
	assert.Equal(t, 1, deg["A"])
	assert.Equal(t, 3, deg["B"], "self-loop contributes two, incoming edge one")
	assert.Equal(t, 0, deg["C"])
}

func TestEffectiveWeight(t *testing.T) {
	weighted := &core.Edge{Weight: 3.5, Weighted: true}
	weightless := &core.Edge{}

	assert.Equal(t, 3.5, core.EffectiveWeight(weighted, true))
	assert.Equal(t, 1.0, core.EffectiveWeight(weighted, false))
	assert.Equal(t, 1.0, core.EffectiveWeight(weightless, true))
}
