package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg.VoxelSize)
	require.NotNil(t, cfg.MaxPoints)
	require.NotNil(t, cfg.DBPath)
	require.NotNil(t, cfg.Plane)

	assert.Equal(t, 0.5, *cfg.VoxelSize)
	assert.Equal(t, 0, *cfg.MaxPoints)
	assert.Equal(t, "clouds.db", *cfg.DBPath)
	assert.Equal(t, "xy", *cfg.Plane)
}

func TestLoad_PartialOverride(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "cloudgrid.json", `{"voxel_size": 0.1, "plane": "xz"}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, *cfg.VoxelSize)
	assert.Equal(t, "xz", *cfg.Plane)
	// Omitted fields keep their defaults.
	assert.Equal(t, 0, *cfg.MaxPoints)
	assert.Equal(t, "clouds.db", *cfg.DBPath)
}

func TestLoad_WrongExtension(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "cloudgrid.yaml", `{}`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "bad.json", `{"voxel_size": `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Merge(&Config{MaxPoints: ptrInt(1000)})
	assert.Equal(t, 1000, *cfg.MaxPoints)
	assert.Equal(t, 0.5, *cfg.VoxelSize)

	// nil merge is a no-op.
	cfg.Merge(nil)
	assert.Equal(t, 1000, *cfg.MaxPoints)
}
