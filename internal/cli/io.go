package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/graphforge/graphforge/core"
	"github.com/graphforge/graphforge/interchange"
)

// loadGraph reads an interchange document from path ("-" for stdin)
// and replays it into a graph.
func loadGraph(path string) (*core.Graph, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := interchange.Import(raw)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return g, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
