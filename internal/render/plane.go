package render

import (
	"fmt"

	"github.com/banshee-data/cloudgrid/internal/cloud"
)

// Plane selects the 2D projection used for rendering. The axis left out of
// the plane drives the colour ramp.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

// ParsePlane converts a user-facing plane name ("xy", "xz" or "yz").
func ParsePlane(s string) (Plane, error) {
	switch s {
	case "xy", "XY":
		return PlaneXY, nil
	case "xz", "XZ":
		return PlaneXZ, nil
	case "yz", "YZ":
		return PlaneYZ, nil
	}
	return 0, fmt.Errorf("invalid plane %q (want xy, xz or yz)", s)
}

func (pl Plane) String() string {
	switch pl {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	}
	return fmt.Sprintf("plane(%d)", int(pl))
}

// axes returns the horizontal, vertical and depth (colour) axes for the
// projection.
func (pl Plane) axes() (h, v, depth cloud.Axis) {
	switch pl {
	case PlaneXZ:
		return cloud.AxisX, cloud.AxisZ, cloud.AxisY
	case PlaneYZ:
		return cloud.AxisY, cloud.AxisZ, cloud.AxisX
	default:
		return cloud.AxisX, cloud.AxisY, cloud.AxisZ
	}
}
