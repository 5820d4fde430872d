package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltInConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, []int{1, 10, 100, 1000}, cfg.Propagate.Widths)
	assert.Equal(t, 100, cfg.Propagate.Iterations)
	assert.Equal(t, 5, cfg.Graph.Repeats)
	require.Len(t, cfg.Graph.Cases, 6)
	assert.Equal(t, "simple component", cfg.Graph.Cases[0].Name)
	assert.Equal(t, 0.2, cfg.Graph.Cases[0].ReadFraction)
}

func TestLoadConfigOverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  repeats: 1
  cases:
    - name: tiny
      width: 4
      layers: 3
      static_fraction: 0.5
      sources: 2
      read_fraction: 1
      iterations: 10
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Propagate.Iterations, "untouched sections keep built-in values")
	assert.Equal(t, 1, cfg.Graph.Repeats)
	require.Len(t, cfg.Graph.Cases, 1)
	assert.Equal(t, "tiny", cfg.Graph.Cases[0].Name)
}

func TestLoadConfigRejectsInvalidCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
graph:
  cases:
    - name: too many sources
      width: 2
      layers: 3
      sources: 5
      read_fraction: 1
      static_fraction: 1
    - name: bad fraction
      width: 2
      layers: 3
      sources: 1
      read_fraction: 1.5
      static_fraction: 1
`), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many sources")
	assert.Contains(t, err.Error(), "bad fraction")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
