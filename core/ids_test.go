package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestVertexNamer_Sequence verifies the A..Z then AA.. progression and
// that a freed early letter is reused before new names are minted.
func TestVertexNamer_Sequence(t *testing.T) {
	n := newVertexNamer()

	assert.Equal(t, "A", n.Generate())
	assert.Equal(t, "B", n.Generate())
	assert.Equal(t, "C", n.Generate())

	// Releasing "B" makes it the next candidate: the scan restarts at "A".
	n.Release("B")
	assert.Equal(t, "B", n.Generate())
	assert.Equal(t, "D", n.Generate())
}

func TestVertexNamer_DoubleLetters(t *testing.T) {
	n := newVertexNamer()
	// Exhaust the single-letter space.
	for i := 0; i < 26; i++ {
		n.Generate()
	}
	assert.Equal(t, "AA", n.Generate())
	assert.Equal(t, "AB", n.Generate())
}

func TestVertexNamer_FallbackToken(t *testing.T) {
	n := newVertexNamer()
	// Exhaust single and double letters: 26 + 26*26 names.
	for i := 0; i < 26+26*26; i++ {
		n.Generate()
	}
	tok1 := n.Generate()
	tok2 := n.Generate()
	assert.NotEmpty(t, tok1)
	assert.NotEqual(t, tok1, tok2, "fallback tokens must be unique")
}

func TestVertexNamer_ReserveRelease(t *testing.T) {
	n := newVertexNamer()

	assert.True(t, n.Reserve("X"))
	assert.False(t, n.Reserve("X"), "second reservation must fail without side effect")

	// Release is idempotent.
	n.Release("X")
	n.Release("X")
	assert.True(t, n.Reserve("X"))

	// A reserved letter is skipped by the generator.
	assert.True(t, n.Reserve("A"))
	assert.Equal(t, "B", n.Generate())
}

// TestEdgeNamer_DirectedKeys checks that directed pairs keep their
// orientation and parallel edges pick up ordinal suffixes.
func TestEdgeNamer_DirectedKeys(t *testing.T) {
	n := newEdgeNamer(true)

	assert.Equal(t, "A-B", n.Generate("A", "B"))
	assert.Equal(t, "A-B#2", n.Generate("A", "B"))
	// Reverse orientation is an independent key in directed mode.
	assert.Equal(t, "B-A", n.Generate("B", "A"))
}

// TestEdgeNamer_UndirectedNormalization checks that (A,B) and (B,A)
// collide to the same sorted key in undirected mode.
func TestEdgeNamer_UndirectedNormalization(t *testing.T) {
	n := newEdgeNamer(false)

	assert.Equal(t, "A-B", n.Generate("B", "A"))
	assert.Equal(t, "A-B#2", n.Generate("A", "B"))
}

func TestEdgeNamer_ReleaseRecyclesSlot(t *testing.T) {
	n := newEdgeNamer(false)

	id1 := n.Generate("A", "B")
	id2 := n.Generate("A", "B")
	assert.Equal(t, "A-B", id1)
	assert.Equal(t, "A-B#2", id2)

	// Releasing the suffixed ID strips the suffix before decrementing.
	n.Release(id2)
	assert.Equal(t, "A-B#2", n.Generate("A", "B"))

	// The counter never drops below zero.
	n.Release("A-B#2")
	n.Release("A-B")
	n.Release("A-B")
	n.Release("A-B")
	assert.Equal(t, "A-B", n.Generate("A", "B"))
}

// TestEdgeNamer_HashInVertexName verifies that Release only strips a
// trailing "#<digits>" parallel suffix. A "#" inside a vertex name is
// part of the key, not a suffix boundary.
func TestEdgeNamer_HashInVertexName(t *testing.T) {
	n := newEdgeNamer(true)

	id := n.Generate("X#1", "Y")
	assert.Equal(t, "X#1-Y", id)

	// Releasing the bare key must recycle its own counter, not strand
	// it by decrementing "X" instead.
	n.Release(id)
	assert.Equal(t, "X#1-Y", n.Generate("X#1", "Y"))

	// A real parallel suffix on the same key still strips correctly.
	id2 := n.Generate("X#1", "Y")
	assert.Equal(t, "X#1-Y#2", id2)
	n.Release(id2)
	assert.Equal(t, "X#1-Y#2", n.Generate("X#1", "Y"))

	// A non-numeric tail after the last "#" is never treated as a
	// suffix.
	n2 := newEdgeNamer(false)
	first := n2.Generate("A", "B#x")
	assert.Equal(t, "A-B#x", first)
	n2.Release(first)
	assert.Equal(t, "A-B#x", n2.Generate("A", "B#x"))
}
