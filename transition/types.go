package transition

import "errors"

// ErrNilGraph is returned when the input graph is nil.
var ErrNilGraph = errors.New("transition: nil graph")

// MergePolicy decides the surviving weight when directed arcs over the
// same endpoint pair collapse into one undirected edge.
type MergePolicy int

const (
	// First keeps the weight of the first arc seen for the pair.
	// No upstream tie-break is more principled, and first-seen makes
	// the undirected round trip lossless.
	First MergePolicy = iota

	// Min keeps the smallest weight among the pair's weighted arcs.
	Min

	// Max keeps the largest weight among the pair's weighted arcs.
	Max
)

// String implements fmt.Stringer.
func (p MergePolicy) String() string {
	switch p {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "first"
	}
}

// Options configures a transition.
type Options struct {
	// Merge is the weight policy for directed-to-undirected merges.
	Merge MergePolicy
}

// Option mutates Options.
type Option func(*Options)

// WithMergePolicy overrides the merge policy.
func WithMergePolicy(p MergePolicy) Option {
	return func(o *Options) { o.Merge = p }
}

// DefaultOptions returns the baseline configuration: First merges.
func DefaultOptions() Options {
	return Options{Merge: First}
}

// Mapping relates IDs in the input graph to IDs in the output graph.
// Vertex IDs carry over unchanged, so their mapping is always identity;
// it is materialized anyway so callers can treat both kinds uniformly.
type Mapping struct {
	// Vertices maps each input vertex ID to its output vertex ID.
	Vertices map[string]string

	// Edges maps each input edge ID to the output edge IDs it became:
	// two arcs when splitting, one merged edge when collapsing, itself
	// on a same-type no-op.
	Edges map[string][]string
}

func identityMapping(vertices []string, edges []string) *Mapping {
	m := &Mapping{
		Vertices: make(map[string]string, len(vertices)),
		Edges:    make(map[string][]string, len(edges)),
	}
	for _, id := range vertices {
		m.Vertices[id] = id
	}
	for _, id := range edges {
		m.Edges[id] = []string{id}
	}
	return m
}
