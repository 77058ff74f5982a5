// Package voxel implements voxel-grid downsampling of point clouds.
//
// Points are binned into cubic cells of a fixed edge length and one
// representative point is kept per occupied cell. The representative is
// always the point with the smallest original index, and output order
// follows ascending original index, so the operation is deterministic.
package voxel
