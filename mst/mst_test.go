package mst_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphforge/graphforge/core"
	"github.com/graphforge/graphforge/mst"
)

func addVertices(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
}

func mustEdge(t *testing.T, g *core.Graph, from, to string, w float64) {
	t.Helper()
	_, err := g.AddEdge(from, to, w)
	require.NoError(t, err)
}

// Classic 4-vertex example: the square A-B-C-D with one diagonal.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	addVertices(t, g, "A", "B", "C", "D")
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 4)
	mustEdge(t, g, "C", "D", 2)
	mustEdge(t, g, "D", "A", 3)
	mustEdge(t, g, "A", "C", 5)
	return g
}

func TestKruskal_Square(t *testing.T) {
	res, err := mst.KruskalMST(buildSquare(t))
	require.NoError(t, err)

	assert.Equal(t, mst.Kruskal, res.Algorithm)
	assert.Len(t, res.Edges, 3)
	assert.Equal(t, 6.0, res.TotalWeight)

	got := make([]string, 0, 3)
	for _, e := range res.Edges {
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"A-B", "C-D", "A-D"}, got, "acceptance follows ascending weight")
}

func TestPrim_Square(t *testing.T) {
	res, err := mst.PrimMST(buildSquare(t), mst.WithRoot("C"))
	require.NoError(t, err)

	assert.Equal(t, mst.Prim, res.Algorithm)
	assert.Len(t, res.Edges, 3)
	assert.Equal(t, 6.0, res.TotalWeight)
}

func TestMST_Disconnected(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "A", "B", "C", "D")
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "C", "D", 1)

	_, err := mst.KruskalMST(g)
	assert.ErrorIs(t, err, mst.ErrNotConnected)

	_, err = mst.PrimMST(g)
	assert.ErrorIs(t, err, mst.ErrNotConnected)
}

func TestMST_ValidationOrder(t *testing.T) {
	_, err := mst.KruskalMST(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	d := core.NewGraph(core.WithDirected(true))
	_, err = mst.KruskalMST(d)
	assert.ErrorIs(t, err, mst.ErrDirectedGraph, "directedness is checked before size")

	small := core.NewGraph()
	addVertices(t, small, "A")
	_, err = mst.PrimMST(small)
	assert.ErrorIs(t, err, mst.ErrInsufficientVertices)

	weightless := core.NewGraph()
	addVertices(t, weightless, "A", "B", "C")
	mustEdge(t, weightless, "A", "B", 1)
	_, err = weightless.AddUnweightedEdge("B", "C")
	require.NoError(t, err)
	_, err = mst.KruskalMST(weightless)
	assert.ErrorIs(t, err, mst.ErrMissingWeights, "weight check precedes connectivity")
}

func TestPrim_UnknownRoot(t *testing.T) {
	_, err := mst.PrimMST(buildSquare(t), mst.WithRoot("Z"))
	assert.ErrorIs(t, err, mst.ErrUnknownRoot)
}

func TestMST_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "A", "B")
	mustEdge(t, g, "A", "B", 2)
	mustEdge(t, g, "A", "A", 0) // cheaper than the real edge, still never accepted

	res, err := mst.KruskalMST(g)
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, "A-B", res.Edges[0].ID)
}

func TestMST_ParallelEdgesKeepCheapest(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "A", "B")
	mustEdge(t, g, "A", "B", 5)
	mustEdge(t, g, "A", "B", 2)

	for _, alg := range []mst.Algorithm{mst.Kruskal, mst.Prim} {
		res, err := mst.Run(g, alg)
		require.NoError(t, err)
		assert.Equal(t, 2.0, res.TotalWeight, alg.String())
	}
}

func TestMST_Agreement(t *testing.T) {
	// Random connected graphs: a spanning path guarantees connectivity,
	// then extra chords with random weights.
	rng := rand.New(rand.NewSource(11))
	ids := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

	for trial := 0; trial < 20; trial++ {
		g := core.NewGraph()
		addVertices(t, g, ids...)
		for i := 1; i < len(ids); i++ {
			mustEdge(t, g, ids[i-1], ids[i], float64(rng.Intn(50)+1))
		}
		for k := 0; k < 12; k++ {
			i, j := rng.Intn(len(ids)), rng.Intn(len(ids))
			if i == j {
				continue
			}
			mustEdge(t, g, ids[i], ids[j], float64(rng.Intn(50)+1))
		}

		k, err := mst.KruskalMST(g)
		require.NoError(t, err)
		p, err := mst.PrimMST(g)
		require.NoError(t, err)

		assert.Equal(t, k.TotalWeight, p.TotalWeight, "trial %d", trial)
		assert.Len(t, p.Edges, len(ids)-1)
	}
}
