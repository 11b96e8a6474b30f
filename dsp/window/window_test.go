package window

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-brake/internal/testutil"
)

func TestGenerateShapes(t *testing.T) {
	tests := []struct {
		typ  Type
		opts []Option
		want []float64
	}{
		{TypeRectangular, nil, []float64{1, 1, 1, 1}},
		{TypeHann, nil, []float64{0, 0.75, 0.75, 0}},
		{TypeHann, []Option{WithPeriodic()}, []float64{0, 0.5, 1, 0.5}},
		{TypeHamming, []Option{WithPeriodic()}, []float64{0.08, 0.54, 1, 0.54}},
		{TypeBlackman, []Option{WithPeriodic()}, []float64{0, 0.34, 1, 0.34}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := Generate(tt.typ, 4, tt.opts...)
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("Generate(1) = %v, want [0]", w)
	}
}

func TestPeriodicHannSymmetry(t *testing.T) {
	const n = 64
	w := Generate(TypeHann, n, WithPeriodic())

	for i := 1; i < n/2; i++ {
		if math.Abs(w[i]-w[n-i]) > 1e-12 {
			t.Fatalf("w[%d] = %v, w[%d] = %v: periodic Hann must be symmetric about n/2", i, w[i], n-i, w[n-i])
		}
	}
	if w[n/2] != 1 {
		t.Fatalf("w[n/2] = %v, want 1", w[n/2])
	}
}

func TestApplyMatchesCoefficients(t *testing.T) {
	buf := testutil.DeterministicNoise(3, 1, 32)
	want := append([]float64(nil), buf...)
	coeffs := Generate(TypeBlackman, 32)
	for i := range want {
		want[i] *= coeffs[i]
	}

	Apply(TypeBlackman, buf)
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-15)

	Apply(TypeHann, nil)
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	buf := []float64{2, 2, 2}
	if err := ApplyCoefficientsInPlace(buf, []float64{0.5, 1, 0}); err != nil {
		t.Fatalf("ApplyCoefficientsInPlace() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{1, 2, 0}, 0)

	if err := ApplyCoefficientsInPlace(buf, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestCoherentGain(t *testing.T) {
	g, err := CoherentGain(Generate(TypeHann, 1024, WithPeriodic()))
	if err != nil {
		t.Fatalf("CoherentGain() error = %v", err)
	}
	if math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("CoherentGain(periodic hann) = %v, want 0.5", g)
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("CoherentGain(nil) expected error")
	}
}
