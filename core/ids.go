// Package core: identifier allocators.
//
// Two independent allocators serve each Graph instance: one for vertex
// names, one for edge keys. Both are owned by the Graph and die with it;
// there is no shared process-global naming state. The Graph honors the
// allocator contract by releasing every name on removal, so the used-name
// sets stay in 1:1 correspondence with the live vertex/edge sets.

package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// letterA and letterZ bound the single- and double-letter name scans.
	letterA = 'A'
	letterZ = 'Z'

	// edgeKeySeparator joins the two endpoint IDs into a canonical key.
	edgeKeySeparator = "-"

	// parallelSuffixSeparator marks the ordinal of a parallel edge,
	// as in "A-B#2".
	parallelSuffixSeparator = "#"
)

// vertexNamer hands out human-readable vertex names in the sequence
// A..Z, AA..ZZ, falling back to a globally-unique token once the
// double-letter space is exhausted. Generation is deterministic given
// the reserve/release history: the scan always restarts from "A", so a
// freed early letter is reused before new multi-letter names are minted.
type vertexNamer struct {
	used map[string]struct{}
}

func newVertexNamer() *vertexNamer {
	return &vertexNamer{used: make(map[string]struct{})}
}

// Generate returns the next unused name and marks it used.
// Complexity: O(26²) worst case over the letter space.
func (n *vertexNamer) Generate() string {
	// 1) Single letters A..Z.
	for c := letterA; c <= letterZ; c++ {
		name := string(rune(c))
		if _, taken := n.used[name]; !taken {
			n.used[name] = struct{}{}
			return name
		}
	}
	// 2) Double letters AA..ZZ.
	for c1 := letterA; c1 <= letterZ; c1++ {
		for c2 := letterA; c2 <= letterZ; c2++ {
			name := string(rune(c1)) + string(rune(c2))
			if _, taken := n.used[name]; !taken {
				n.used[name] = struct{}{}
				return name
			}
		}
	}
	// 3) Letter space exhausted: fall back to a globally-unique token.
	name := uuid.NewString()
	n.used[name] = struct{}{}

	return name
}

// Reserve marks name as used and returns true, or returns false without
// side effect when the name is already taken.
func (n *vertexNamer) Reserve(name string) bool {
	if _, taken := n.used[name]; taken {
		return false
	}
	n.used[name] = struct{}{}

	return true
}

// Release frees name for reuse. Idempotent.
func (n *vertexNamer) Release(name string) {
	delete(n.used, name)
}

// edgeNamer derives edge IDs from the endpoint pair. It keeps one
// counter per canonical key: the first edge between a pair gets the bare
// key, parallel edges get "key#2", "key#3", and so on. Releasing an ID
// decrements the counter for its key; the counter never drops below zero.
type edgeNamer struct {
	counts map[string]int

	// directed controls key normalization: undirected pairs are sorted
	// lexicographically so (A,B) and (B,A) collide to the same key.
	directed bool
}

func newEdgeNamer(directed bool) *edgeNamer {
	return &edgeNamer{counts: make(map[string]int), directed: directed}
}

// canonicalKey normalizes the endpoint pair into the naming key.
func (n *edgeNamer) canonicalKey(from, to string) string {
	if !n.directed && to < from {
		from, to = to, from
	}

	return from + edgeKeySeparator + to
}

// Generate returns the next edge ID for the (from, to) pair and bumps
// the pair's counter.
func (n *edgeNamer) Generate(from, to string) string {
	key := n.canonicalKey(from, to)
	n.counts[key]++
	if n.counts[key] == 1 {
		return key
	}

	return fmt.Sprintf("%s%s%d", key, parallelSuffixSeparator, n.counts[key])
}

// Release frees the slot held by the edge ID. The canonical key is
// recovered by stripping a trailing "#n" parallel suffix. Only the
// last separator with an all-digit tail counts: vertex names may
// themselves contain "#", so cutting at the first one would decrement
// a foreign key and strand the real counter.
func (n *edgeNamer) Release(id string) {
	key := id
	if i := strings.LastIndex(id, parallelSuffixSeparator); i >= 0 && isDigits(id[i+1:]) {
		key = id[:i]
	}
	if n.counts[key] > 0 {
		n.counts[key]--
	}
	if n.counts[key] == 0 {
		delete(n.counts, key)
	}
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
