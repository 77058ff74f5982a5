// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

// GridCloud builds an nx*ny*nz lattice cloud with the given spacing,
// starting at the origin. Points are emitted x-fastest so tests get a
// deterministic order.
func GridCloud(nx, ny, nz int, spacing float64) cloud.Cloud {
	c := make(cloud.Cloud, 0, nx*ny*nz)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				c = append(c, cloud.Point{
					float64(x) * spacing,
					float64(y) * spacing,
					float64(z) * spacing,
				})
			}
		}
	}
	return c
}

// TempDBPath returns a database path inside a per-test temp directory.
func TempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "clouds.db")
}
