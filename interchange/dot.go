package interchange

import (
	"strconv"

	"github.com/emicklei/dot"

	"github.com/graphforge/graphforge/core"
)

// DOT renders the graph in Graphviz dot notation. Weighted edges get
// their weight as a label, colored vertices keep their color.
func DOT(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	kind := dot.Undirected
	if g.Directed() {
		kind = dot.Directed
	}
	out := dot.NewGraph(kind)

	nodes := make(map[string]dot.Node, g.VertexCount())
	for _, id := range g.Vertices() {
		n := out.Node(id)
		vertex, err := g.VertexByID(id)
		if err != nil {
			return "", err
		}
		if color, ok := vertex.Metadata[MetadataColorKey].(string); ok {
			n.Attr("color", color)
		}
		nodes[id] = n
	}
	for _, e := range g.Edges() {
		edge := out.Edge(nodes[e.From], nodes[e.To])
		if e.Weighted {
			edge.Label(strconv.FormatFloat(e.Weight, 'g', -1, 64))
		}
	}
	return out.String(), nil
}
