package runconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThresholdParams(t *testing.T) {
	p := DefaultThresholdParams()
	assert.Equal(t, 0.5, p.Epsilon)
	assert.Equal(t, 0.5, p.Lambda)
	assert.Equal(t, 0.5, p.Alpha)
}

func TestLoadThresholdParamsOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("epsilon: 0.25\nnumber_of_nodes: 100\n"), 0o644))

	p, err := LoadThresholdParams(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, p.Epsilon)
	assert.Equal(t, 0.5, p.Lambda)
	assert.Equal(t, 0.5, p.Alpha)
	assert.Equal(t, uint32(100), p.NumberOfNodes)
}

func TestLoadThresholdParamsMissingFile(t *testing.T) {
	_, err := LoadThresholdParams(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
