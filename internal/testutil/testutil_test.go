package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

func TestGridCloud(t *testing.T) {
	t.Parallel()

	c := GridCloud(2, 3, 4, 0.5)
	require.Len(t, c, 24)

	assert.Equal(t, cloud.Point{0, 0, 0}, c[0])
	// x varies fastest.
	assert.Equal(t, cloud.Point{0.5, 0, 0}, c[1])
	assert.Equal(t, cloud.Point{0.5, 1, 1.5}, c[len(c)-1])
}

func TestTempDBPath(t *testing.T) {
	t.Parallel()

	path := TempDBPath(t)
	assert.True(t, strings.HasSuffix(path, "clouds.db"))
}
