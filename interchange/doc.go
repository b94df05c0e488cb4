// Package interchange moves graphs across the process boundary: a JSON
// document format with schema validation for import/export, and a
// Graphviz DOT dump for visualization.
//
// The document is deliberately small:
//
//	{
//	  "directed": false,
//	  "vertices": [{"id": "A", "color": "red"}, {"id": "B"}],
//	  "edges": [{"source": "A", "target": "B", "weight": 2.5}]
//	}
//
// Color is an optional per-vertex tag restricted to "red" and "blue";
// weight is an optional per-edge number, and an edge without one is
// weightless. Validation runs in two passes: a compiled JSON Schema
// rejects malformed shapes, then a structural pass enforces what a
// schema cannot express (unique vertex IDs, edge endpoints resolving to
// declared vertices). Every rejection wraps ErrValidation.
//
// Import replays the document into a fresh graph through the ordinary
// mutation surface, in document order, so an imported graph is
// indistinguishable from one built by hand.
package interchange
