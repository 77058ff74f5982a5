package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

// SaveScatterPNG writes a PNG scatter of the cloud projected onto the
// requested plane. The output format is taken from the file extension, so
// path should end in .png.
func SaveScatterPNG(path string, c cloud.Cloud, pl Plane, title string) error {
	h, v, _ := pl.axes()

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = h.String()
	p.Y.Label.Text = v.String()
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(c))
	for i, pt := range c {
		pts[i] = plotter.XY{X: pt[h], Y: pt[v]}
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build scatter: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
