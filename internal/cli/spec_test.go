package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayeganov/gptree/pkg/gen"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSpec(t *testing.T) {
	path := writeSpec(t, `
num_params: 3
max_depth: 4
method: grow
functions: ["+", "*"]
terminals: [1, 2.5]
seed: 42
param_bias: 0.6
`)

	spec, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, 3, spec.NumParams)
	assert.Equal(t, 4, spec.MaxDepth)
	assert.Equal(t, "grow", spec.Method)
	require.NotNil(t, spec.Seed)
	assert.Equal(t, uint64(42), *spec.Seed)
	require.NotNil(t, spec.ParamBias)
	assert.Equal(t, 0.6, *spec.ParamBias)

	req, err := spec.Request()
	require.NoError(t, err)
	assert.Equal(t, gen.MethodGrow, req.Method)
	require.Len(t, req.Functions, 2)
	assert.Equal(t, []float64{1, 2.5}, req.Terminals)
}

func TestLoadSpec_Missing(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSpec_BadYAML(t *testing.T) {
	path := writeSpec(t, "num_params: [not a number")
	_, err := LoadSpec(path)
	assert.Error(t, err)
}

func TestSpec_Request_UnknownFunction(t *testing.T) {
	spec := &Spec{NumParams: 1, MaxDepth: 1, Method: "full", Functions: []string{"^"}}
	_, err := spec.Request()
	assert.ErrorIs(t, err, gen.ErrUnknownFunction)
}

func TestSpec_Request_DefaultsToAllFunctions(t *testing.T) {
	spec := &Spec{NumParams: 1, MaxDepth: 1, Method: "full"}
	req, err := spec.Request()
	require.NoError(t, err)
	assert.Len(t, req.Functions, 4)
}
