package interchange

import "errors"

// ErrValidation is wrapped by every document rejection, from both the
// schema pass and the structural pass.
var ErrValidation = errors.New("interchange: invalid document")

// ErrNilGraph is returned when exporting a nil graph.
var ErrNilGraph = errors.New("interchange: nil graph")

// MetadataColorKey is the vertex metadata key carrying the optional
// color tag.
const MetadataColorKey = "color"

// Document is the JSON interchange representation of a graph.
type Document struct {
	Directed bool        `json:"directed"`
	Vertices []VertexDoc `json:"vertices"`
	Edges    []EdgeDoc   `json:"edges"`
}

// VertexDoc is one vertex entry. Color is optional and restricted to
// "red" or "blue".
type VertexDoc struct {
	ID    string `json:"id"`
	Color string `json:"color,omitempty"`
}

// EdgeDoc is one edge entry. A nil Weight imports as a weightless
// edge.
type EdgeDoc struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight *float64 `json:"weight,omitempty"`
}
