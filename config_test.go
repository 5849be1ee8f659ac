package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().validate())
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(file, []byte("moveIncrement: 0.25\nreachDistance: 0.8\n"), 0644))

	cfg, err := LoadConfig(file)
	require.NoError(t, err)

	assert.Equal(t, 0.25, cfg.MoveIncrement)
	assert.Equal(t, 0.8, cfg.ReachDistance)
	// Untouched fields keep their defaults
	assert.Equal(t, DefaultConfig().RotationIncrement, cfg.RotationIncrement)
	assert.Equal(t, DefaultConfig().MaxBranches, cfg.MaxBranches)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(file, []byte("moveIncrement: -1\n"), 0644))

	_, err := LoadConfig(file)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
