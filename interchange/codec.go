package interchange

import (
	"encoding/json"
	"fmt"

	"github.com/graphforge/graphforge/core"
)

// Decode validates raw JSON against the schema and the structural
// rules and returns the parsed document.
func Decode(raw []byte) (*Document, error) {
	if err := validateShape(raw); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := validateStructure(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Build replays a validated document into a fresh graph through the
// regular mutation surface, in document order. Colors land in vertex
// metadata under MetadataColorKey.
func Build(doc *Document) (*core.Graph, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrValidation)
	}
	if err := validateStructure(doc); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithDirected(doc.Directed))
	for _, v := range doc.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, err
		}
		if v.Color != "" {
			vertex, err := g.VertexByID(v.ID)
			if err != nil {
				return nil, err
			}
			vertex.Metadata[MetadataColorKey] = v.Color
		}
	}
	for _, e := range doc.Edges {
		var err error
		if e.Weight != nil {
			_, err = g.AddEdge(e.Source, e.Target, *e.Weight)
		} else {
			_, err = g.AddUnweightedEdge(e.Source, e.Target)
		}
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Import is Decode followed by Build.
func Import(raw []byte) (*core.Graph, error) {
	doc, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// Export captures a graph as a document, vertices and edges in
// insertion order.
func Export(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	doc := &Document{
		Directed: g.Directed(),
		Vertices: make([]VertexDoc, 0, g.VertexCount()),
		Edges:    make([]EdgeDoc, 0, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		vd := VertexDoc{ID: id}
		vertex, err := g.VertexByID(id)
		if err != nil {
			return nil, err
		}
		if color, ok := vertex.Metadata[MetadataColorKey].(string); ok {
			vd.Color = color
		}
		doc.Vertices = append(doc.Vertices, vd)
	}
	for _, e := range g.Edges() {
		ed := EdgeDoc{Source: e.From, Target: e.To}
		if e.Weighted {
			w := e.Weight
			ed.Weight = &w
		}
		doc.Edges = append(doc.Edges, ed)
	}
	return doc, nil
}

// Encode is Export followed by JSON marshaling with indentation.
func Encode(g *core.Graph) ([]byte, error) {
	doc, err := Export(g)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
