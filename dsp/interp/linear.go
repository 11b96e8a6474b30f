package interp

import "math"

// Split separates a non-negative read position into its integer index and
// the fractional offset toward the next sample.
func Split(pos float64) (int, float64) {
	i := math.Floor(pos)
	return int(i), pos - i
}

// Linear2 interpolates between x0 and x1 at fraction t in [0, 1).
func Linear2(t, x0, x1 float64) float64 {
	return x0 + (x1-x0)*t
}
