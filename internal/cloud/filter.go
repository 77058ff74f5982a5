package cloud

import "fmt"

// FilterRange returns a new cloud containing the points whose coordinate on
// the given axis lies in [lo, hi]. Both bounds are inclusive; lo > hi yields
// an empty result. The input cloud is never modified.
func FilterRange(c Cloud, axis Axis, lo, hi float64) (Cloud, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("invalid axis %d", int(axis))
	}

	out := make(Cloud, 0, len(c))
	for _, p := range c {
		if p[axis] >= lo && p[axis] <= hi {
			out = append(out, p)
		}
	}
	return out, nil
}
