package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

// viridis is the colour ramp applied to the depth axis.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteScatterHTML renders the cloud as a self-contained ECharts scatter
// page. Points are projected onto the requested plane; the remaining axis
// colours the points through a visual map.
func WriteScatterHTML(w io.Writer, c cloud.Cloud, pl Plane, title string) error {
	h, v, depth := pl.axes()

	data := make([]opts.ScatterData, 0, len(c))
	maxAbs := 0.0
	minDepth := math.Inf(1)
	maxDepth := math.Inf(-1)
	for _, p := range c {
		if math.Abs(p[h]) > maxAbs {
			maxAbs = math.Abs(p[h])
		}
		if math.Abs(p[v]) > maxAbs {
			maxAbs = math.Abs(p[v])
		}
		if p[depth] < minDepth {
			minDepth = p[depth]
		}
		if p[depth] > maxDepth {
			maxDepth = p[depth]
		}
		data = append(data, opts.ScatterData{Value: []interface{}{p[h], p[v], p[depth]}})
	}

	// Small padding so points at the edges stay visible.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	if minDepth > maxDepth {
		minDepth, maxDepth = 0, 1
	}
	if minDepth == maxDepth {
		maxDepth = minDepth + 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("plane=%s points=%d", pl, len(data))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: h.String(), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: v.String(), NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(minDepth),
			Max:        float32(maxDepth),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)

	scatter.AddSeries("points", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
