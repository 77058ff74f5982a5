// Package config loads tool defaults from a JSON file. Fields omitted from
// the file keep their built-in defaults, so partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// maxFileSize caps config reads (1MB).
const maxFileSize = 1 * 1024 * 1024

// Config holds the tool defaults. All fields are pointers so a JSON file
// can override any subset.
type Config struct {
	// VoxelSize is the default downsampling voxel edge length.
	VoxelSize *float64 `json:"voxel_size,omitempty"`

	// MaxPoints bounds downsampler input. Zero means unbounded.
	MaxPoints *int `json:"max_points,omitempty"`

	// DBPath is the default cloud store location.
	DBPath *string `json:"db_path,omitempty"`

	// Plane is the default render projection ("xy", "xz" or "yz").
	Plane *string `json:"plane,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrString(v string) *string    { return &v }

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		VoxelSize: ptrFloat64(0.5),
		MaxPoints: ptrInt(0),
		DBPath:    ptrString("clouds.db"),
		Plane:     ptrString("xy"),
	}
}

// Load reads a JSON config file and merges it over the built-in defaults.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	cfg.Merge(&loaded)
	return cfg, nil
}

// Merge copies every non-nil field of other into c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.VoxelSize != nil {
		c.VoxelSize = other.VoxelSize
	}
	if other.MaxPoints != nil {
		c.MaxPoints = other.MaxPoints
	}
	if other.DBPath != nil {
		c.DBPath = other.DBPath
	}
	if other.Plane != nil {
		c.Plane = other.Plane
	}
}
