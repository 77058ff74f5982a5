// Package render exports 2D scatter views of point clouds, either as a
// self-contained ECharts HTML page or as a PNG via gonum/plot.
package render
