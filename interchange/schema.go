package interchange

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the shape contract for incoming documents. Cross
// references (edge endpoints naming declared vertices, vertex ID
// uniqueness) are beyond a schema and live in the structural pass.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["directed", "vertices", "edges"],
  "properties": {
    "directed": { "type": "boolean" },
    "vertices": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "color": { "enum": ["red", "blue"] }
        }
      }
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["source", "target"],
        "properties": {
          "source": { "type": "string" },
          "target": { "type": "string" },
          "weight": { "type": "number" }
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("document.json", documentSchema)

// validateShape runs the schema pass over raw JSON.
func validateShape(raw []byte) error {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// validateStructure runs the cross-reference pass over a decoded
// document.
func validateStructure(doc *Document) error {
	ids := make(map[string]struct{}, len(doc.Vertices))
	for _, v := range doc.Vertices {
		if v.ID == "" {
			return fmt.Errorf("%w: empty vertex id", ErrValidation)
		}
		if v.Color != "" && v.Color != "red" && v.Color != "blue" {
			return fmt.Errorf("%w: vertex %q has unknown color %q", ErrValidation, v.ID, v.Color)
		}
		if _, dup := ids[v.ID]; dup {
			return fmt.Errorf("%w: duplicate vertex id %q", ErrValidation, v.ID)
		}
		ids[v.ID] = struct{}{}
	}
	for i, e := range doc.Edges {
		if _, ok := ids[e.Source]; !ok {
			return fmt.Errorf("%w: edge %d references undeclared source %q", ErrValidation, i, e.Source)
		}
		if _, ok := ids[e.Target]; !ok {
			return fmt.Errorf("%w: edge %d references undeclared target %q", ErrValidation, i, e.Target)
		}
	}
	return nil
}
