package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

func writeXYZ(t *testing.T, c cloud.Cloud) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.xyz")
	require.NoError(t, cloud.Save(path, c))
	return path
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Error(t, run([]string{"frobnicate"}))
	assert.Error(t, run(nil))
	assert.NoError(t, run([]string{"help"}))
}

func TestRun_Downsample(t *testing.T) {
	in := writeXYZ(t, cloud.Cloud{
		{0.0, 0.0, 0.0},
		{0.05, 0.0, 0.0},
		{1.0, 0.0, 0.0},
	})
	out := filepath.Join(t.TempDir(), "out.xyz")

	err := run([]string{"downsample", "-in", in, "-out", out, "-voxel", "0.5"})
	require.NoError(t, err)

	got, err := cloud.Load(out)
	require.NoError(t, err)
	assert.Equal(t, cloud.Cloud{{0, 0, 0}, {1, 0, 0}}, got)
}

func TestRun_Downsample_InvalidVoxel(t *testing.T) {
	in := writeXYZ(t, cloud.Cloud{{1, 2, 3}})
	out := filepath.Join(t.TempDir(), "out.xyz")

	err := run([]string{"downsample", "-in", in, "-out", out, "-voxel", "-1"})
	require.Error(t, err)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no partial output on failure")
}

func TestRun_Filter(t *testing.T) {
	in := writeXYZ(t, cloud.Cloud{
		{0, -5, 0},
		{0, 0, 0},
		{0, 5, 0},
	})
	out := filepath.Join(t.TempDir(), "out.xyz")

	err := run([]string{"filter", "-in", in, "-out", out, "-axis", "y", "-min", "-1", "-max", "1"})
	require.NoError(t, err)

	got, err := cloud.Load(out)
	require.NoError(t, err)
	assert.Equal(t, cloud.Cloud{{0, 0, 0}}, got)
}

func TestRun_SaveLoadDelete(t *testing.T) {
	c := cloud.Cloud{{1, 2, 3}, {4, 5, 6}}
	in := writeXYZ(t, c)
	db := filepath.Join(t.TempDir(), "clouds.db")
	out := filepath.Join(t.TempDir(), "out.xyz")

	require.NoError(t, run([]string{"save", "-in", in, "-name", "scan", "-db", db}))
	require.NoError(t, run([]string{"load", "-name", "scan", "-out", out, "-db", db}))

	got, err := cloud.Load(out)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	require.NoError(t, run([]string{"delete", "-name", "scan", "-db", db}))
	assert.Error(t, run([]string{"load", "-name", "scan", "-out", out, "-db", db}))
}

func TestRun_RenderHTML(t *testing.T) {
	in := writeXYZ(t, cloud.Cloud{{0, 0, 0}, {1, 1, 1}})
	out := filepath.Join(t.TempDir(), "cloud.html")

	require.NoError(t, run([]string{"render", "-in", in, "-out", out, "-plane", "xz"}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestFlagWasSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Float64("voxel", 0, "")
	fs.Int("max-points", 0, "")
	require.NoError(t, fs.Parse([]string{"-voxel", "0.25"}))

	assert.True(t, flagWasSet(fs, "voxel"))
	assert.False(t, flagWasSet(fs, "max-points"))
}
