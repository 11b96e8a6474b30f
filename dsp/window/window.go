// Package window generates analysis window coefficients for spectral
// measurements.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

// Cosine-sum coefficients, w(x) = sum c[k] cos(2 pi k x).
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic form used for FFT framing instead of the
// symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length, or nil for
// non-positive lengths.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic))
	}
	return out
}

// Apply multiplies buf in place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficientsInPlace multiplies samples by precomputed coefficients.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

// CoherentGain returns the mean of the coefficients, the factor by which the
// window scales the spectral peak of a sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	return vecmath.Sum(coeffs) / float64(len(coeffs)), nil
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}
	return float64(n) / den
}
