package cloud

import "fmt"

// Point is a single 3D coordinate. Index with an Axis.
type Point [3]float64

// Axis identifies one coordinate axis of a Point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis converts a user-facing axis name ("x", "y" or "z") to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q (want x, y or z)", s)
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Valid reports whether a names one of the three coordinate axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Cloud is an ordered sequence of points. A Cloud may be empty. Operations
// in this module treat clouds as caller-owned values: they read their input
// and return new clouds rather than mutating in place.
type Cloud []Point

// Clone returns an independent copy of the cloud.
func (c Cloud) Clone() Cloud {
	if c == nil {
		return nil
	}
	out := make(Cloud, len(c))
	copy(out, c)
	return out
}
