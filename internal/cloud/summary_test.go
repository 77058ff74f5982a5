package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	c := Cloud{
		{1, 10, -1},
		{2, 20, -2},
		{3, 30, -3},
		{4, 40, -4},
	}

	s, err := Summarize(c)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean[AxisX], 1e-12)
	assert.InDelta(t, 25, s.Mean[AxisY], 1e-12)
	assert.InDelta(t, -2.5, s.Mean[AxisZ], 1e-12)
	assert.Equal(t, [3]float64{1, 10, -4}, s.Min)
	assert.Equal(t, [3]float64{4, 40, -1}, s.Max)
}

func TestSummarize_SinglePoint(t *testing.T) {
	t.Parallel()

	s, err := Summarize(Cloud{{7, -8, 9}})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, [3]float64{7, -8, 9}, s.Mean)
	assert.Equal(t, [3]float64{7, -8, 9}, s.Min)
	assert.Equal(t, [3]float64{7, -8, 9}, s.Max)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	_, err := Summarize(Cloud{})
	assert.ErrorIs(t, err, ErrEmptyCloud)

	_, err = Summarize(nil)
	assert.ErrorIs(t, err, ErrEmptyCloud)
}

func TestSummaryString(t *testing.T) {
	t.Parallel()

	s := Summary{Count: 2, Mean: [3]float64{1, 2, 3}}
	out := s.String()
	assert.Contains(t, out, "points: 2")
	assert.Contains(t, out, "(1, 2, 3)")
}
