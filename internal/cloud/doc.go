// Package cloud owns the in-memory point-cloud data model and its text IO.
//
// Responsibilities: the Point/Cloud types, loading and saving XYZ text
// files, per-axis summary statistics, and coordinate-range filtering.
// Key types: Point, Cloud, Axis, Summary.
//
// No SQL/database code is allowed in this package; persistence lives in
// internal/cloudstore.
package cloud
