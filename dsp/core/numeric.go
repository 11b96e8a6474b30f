package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
// NaN maps to min so that a corrupted control value can never escape the range.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if math.IsNaN(value) || value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ValidSampleRate reports whether sampleRate is usable by a processor.
func ValidSampleRate(sampleRate float64) bool {
	return sampleRate > 0 && IsFinite(sampleRate)
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
