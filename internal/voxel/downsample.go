package voxel

import (
	"errors"
	"fmt"
	"math"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

var (
	// ErrInvalidVoxelSize is returned when the voxel size is not strictly
	// positive.
	ErrInvalidVoxelSize = errors.New("voxel size must be positive")

	// ErrKeyOverflow is returned when a coordinate divided by the voxel
	// size rounds outside the representable voxel-key range.
	ErrKeyOverflow = errors.New("voxel key outside representable range")

	// ErrPointBudget is returned when the input exceeds a configured
	// point budget.
	ErrPointBudget = errors.New("point count exceeds budget")
)

// key identifies the grid cell a point falls into.
type key [3]int64

// maxKeyMagnitude is 2^63; rounded quotients at or beyond it (or below
// -2^63) do not fit an int64 cell index.
const maxKeyMagnitude = float64(math.MaxInt64)

// Downsampler performs voxel-grid downsampling at a fixed voxel size.
// The zero value is not usable; VoxelSize must be set.
type Downsampler struct {
	// VoxelSize is the cell edge length. Must be strictly positive.
	VoxelSize float64

	// MaxPoints bounds the accepted input size. Zero means unbounded.
	MaxPoints int

	// Logf, when set, receives a single progress line per successful
	// call. The downsampler itself never writes to any output.
	Logf func(format string, args ...any)
}

// Downsample bins every point into a voxel and keeps the first point (by
// original index) of each occupied voxel. The result is a new cloud ordered
// by ascending original index; the input is never modified and every output
// point is a verbatim copy of an input point.
//
// Cell assignment divides each coordinate by VoxelSize and rounds the
// quotient to the nearest integer, half to even. The half-to-even policy is
// load-bearing for reproducibility and must not be changed to
// half-away-from-zero.
func (d *Downsampler) Downsample(c cloud.Cloud) (cloud.Cloud, error) {
	if math.IsNaN(d.VoxelSize) || d.VoxelSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidVoxelSize, d.VoxelSize)
	}
	if d.MaxPoints > 0 && len(c) > d.MaxPoints {
		return nil, fmt.Errorf("%w: %d points, budget %d", ErrPointBudget, len(c), d.MaxPoints)
	}

	seen := make(map[key]struct{}, len(c))
	reps := make([]int, 0, len(c))
	for i, p := range c {
		k, err := cellKey(p, d.VoxelSize)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		reps = append(reps, i)
	}

	out := make(cloud.Cloud, len(reps))
	for j, i := range reps {
		out[j] = c[i]
	}

	if d.Logf != nil {
		d.Logf("downsampled %d points to %d (voxel size %g)", len(c), len(out), d.VoxelSize)
	}
	return out, nil
}

// Downsample is a convenience wrapper for a one-shot unbounded downsample.
func Downsample(c cloud.Cloud, voxelSize float64) (cloud.Cloud, error) {
	d := Downsampler{VoxelSize: voxelSize}
	return d.Downsample(c)
}

// cellKey computes the voxel cell for a point. Non-finite quotients and
// quotients that round outside int64 fail rather than silently wrapping.
func cellKey(p cloud.Point, voxelSize float64) (key, error) {
	var k key
	for axis, v := range p {
		r := math.RoundToEven(v / voxelSize)
		if math.IsNaN(r) || r >= maxKeyMagnitude || r < -maxKeyMagnitude {
			return key{}, fmt.Errorf("%w: coordinate %v on axis %s with voxel size %g",
				ErrKeyOverflow, v, cloud.Axis(axis), voxelSize)
		}
		k[axis] = int64(r)
	}
	return k, nil
}
