package cloud

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyCloud is returned by Summarize when there is nothing to summarise.
var ErrEmptyCloud = errors.New("empty cloud")

// Summary holds per-axis aggregate statistics for a cloud.
type Summary struct {
	Count int
	Mean  [3]float64
	Min   [3]float64
	Max   [3]float64
}

// Summarize computes count, mean, min and max per axis.
func Summarize(c Cloud) (Summary, error) {
	if len(c) == 0 {
		return Summary{}, ErrEmptyCloud
	}

	s := Summary{Count: len(c)}
	col := make([]float64, len(c))
	for axis := AxisX; axis <= AxisZ; axis++ {
		for i, p := range c {
			col[i] = p[axis]
		}
		s.Mean[axis] = stat.Mean(col, nil)
		s.Min[axis] = floats.Min(col)
		s.Max[axis] = floats.Max(col)
	}
	return s, nil
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "points: %d\n", s.Count)
	fmt.Fprintf(&b, "mean:   (%g, %g, %g)\n", s.Mean[0], s.Mean[1], s.Mean[2])
	fmt.Fprintf(&b, "min:    (%g, %g, %g)\n", s.Min[0], s.Min[1], s.Min[2])
	fmt.Fprintf(&b, "max:    (%g, %g, %g)", s.Max[0], s.Max[1], s.Max[2])
	return b.String()
}
