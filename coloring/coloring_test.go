package coloring_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphforge/graphforge/coloring"
	"github.com/graphforge/graphforge/core"
)

func addVertices(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
}

func connect(t *testing.T, g *core.Graph, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddUnweightedEdge(p[0], p[1])
		require.NoError(t, err)
	}
}

func TestColorGraph_OddCycle(t *testing.T) {
	// A 5-cycle is not bipartite, so three colors are necessary, and
	// DSatur must not need a fourth.
	g := core.NewGraph()
	addVertices(t, g, "A", "B", "C", "D", "E")
	connect(t, g, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"},
		[2]string{"D", "E"}, [2]string{"E", "A"})

	res, err := coloring.ColorGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.NumColors)
	assert.True(t, coloring.Validate(g, res.Coloring))
	assert.Len(t, res.ColorClasses, 3)
}

func TestColorGraph_Bipartite(t *testing.T) {
	// DSatur is exact on bipartite graphs: an even cycle takes 2 colors.
	g := core.NewGraph()
	addVertices(t, g, "A", "B", "C", "D", "E", "F")
	connect(t, g, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"},
		[2]string{"D", "E"}, [2]string{"E", "F"}, [2]string{"F", "A"})

	res, err := coloring.ColorGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NumColors)
	assert.True(t, coloring.Validate(g, res.Coloring))
}

func TestColorGraph_Complete(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D"}
	addVertices(t, g, ids...)
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			connect(t, g, [2]string{ids[i], ids[j]})
		}
	}

	res, err := coloring.ColorGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 4, res.NumColors)
	for c, class := range res.ColorClasses {
		assert.Len(t, class, 1, "color %d", c)
	}
}

func TestColorGraph_SelfLoopIgnored(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "A", "B")
	connect(t, g, [2]string{"A", "A"}, [2]string{"A", "B"})

	res, err := coloring.ColorGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.NumColors)
	assert.True(t, coloring.Validate(g, res.Coloring))
}

func TestColorGraph_NoEdges(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "A", "B", "C")

	res, err := coloring.ColorGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumColors)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, res.ColorClasses)
}

func TestColorGraph_Deterministic(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "D", "B", "A", "C")
	connect(t, g, [2]string{"A", "B"}, [2]string{"C", "D"})

	first, err := coloring.ColorGraph(g)
	require.NoError(t, err)
	second, err := coloring.ColorGraph(g)
	require.NoError(t, err)
	assert.Equal(t, first.Coloring, second.Coloring)
	assert.Equal(t, first.ColorClasses, second.ColorClasses)
}

func TestValidate_Partial(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "A", "B", "C")
	connect(t, g, [2]string{"A", "B"}, [2]string{"B", "C"})

	assert.True(t, coloring.Validate(g, map[string]int{"A": 0}), "uncolored vertices are unconstrained")
	assert.True(t, coloring.Validate(g, map[string]int{"A": 0, "C": 0}))
	assert.False(t, coloring.Validate(g, map[string]int{"A": 0, "B": 0}))
	assert.True(t, coloring.Validate(g, nil))
}

func TestChromaticBounds(t *testing.T) {
	g := core.NewGraph()
	addVertices(t, g, "A", "B", "C", "D")
	connect(t, g, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"},
		[2]string{"C", "D"})

	b, err := coloring.ChromaticBounds(g)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Lower, "the triangle A-B-C is found greedily")
	assert.Equal(t, 4, b.Upper, "max degree 3 plus one")
}

func TestColorGraph_AlwaysValidates(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	ids := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

	for trial := 0; trial < 25; trial++ {
		g := core.NewGraph()
		addVertices(t, g, ids...)
		for i := range ids {
			for j := i + 1; j < len(ids); j++ {
				if rng.Float64() < 0.3 {
					connect(t, g, [2]string{ids[i], ids[j]})
				}
			}
		}

		res, err := coloring.ColorGraph(g)
		require.NoError(t, err)
		assert.True(t, coloring.Validate(g, res.Coloring), "trial %d", trial)

		b, err := coloring.ChromaticBounds(g)
		require.NoError(t, err)
		assert.LessOrEqual(t, b.Lower, res.NumColors, "trial %d", trial)
		assert.LessOrEqual(t, res.NumColors, b.Upper, "trial %d", trial)
	}
}
