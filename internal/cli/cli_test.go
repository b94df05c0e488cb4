package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "directed": false,
  "vertices": [{"id": "A"}, {"id": "B"}, {"id": "C"}],
  "edges": [
    {"source": "A", "target": "B", "weight": 1},
    {"source": "B", "target": "C", "weight": 2},
    {"source": "A", "target": "C", "weight": 5}
  ]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))
	return path
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestInfoCmd(t *testing.T) {
	out, err := runCommand(t, newInfoCmd(), writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "type:     undirected")
	assert.Contains(t, out, "vertices: 3")
	assert.Contains(t, out, "edges:    3")
	assert.Contains(t, out, "weakly connected: true")
}

func TestPathCmd(t *testing.T) {
	out, err := runCommand(t, newPathCmd(), writeSample(t), "A", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "A -> B -> C")
	assert.Contains(t, out, "distance: 3")
}

func TestPathCmd_UnitWeights(t *testing.T) {
	out, err := runCommand(t, newPathCmd(), "--unit", writeSample(t), "A", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "path:     A -> C")
	assert.Contains(t, out, "distance: 1")
}

func TestPathCmd_UnknownAlgorithm(t *testing.T) {
	_, err := runCommand(t, newPathCmd(), "--algorithm", "a-star", writeSample(t), "A", "C")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestMSTCmd(t *testing.T) {
	out, err := runCommand(t, newMSTCmd(), writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "total: 3")
}

func TestColorCmd(t *testing.T) {
	out, err := runCommand(t, newColorCmd(), "--bounds", writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "color 0:")
	assert.Contains(t, out, "chromatic number between")
}

func TestEulerCmd(t *testing.T) {
	out, err := runCommand(t, newEulerCmd(), writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Eulerian circuit")
}

func TestHamiltonCmd(t *testing.T) {
	out, err := runCommand(t, newHamiltonCmd(), writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Hamiltonian")
}

func TestConvertCmd(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "converted.json")
	_, err := runCommand(t, newConvertCmd(), "-o", outFile, writeSample(t), "directed")
	require.NoError(t, err)

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"directed": true`)
}

func TestConvertCmd_BadTarget(t *testing.T) {
	_, err := runCommand(t, newConvertCmd(), writeSample(t), "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target type")
}

func TestDotCmd(t *testing.T) {
	out, err := runCommand(t, newDotCmd(), writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "graph")
	assert.Contains(t, out, `"A"`)
}

func TestPairsCmd(t *testing.T) {
	out, err := runCommand(t, newPairsCmd(), writeSample(t))
	require.NoError(t, err)
	assert.Contains(t, out, "A -> C: 3")
}

func TestLoadGraph_Missing(t *testing.T) {
	_, err := loadGraph(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
