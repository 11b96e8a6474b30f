package interp

import "testing"

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		pos   float64
		index int
		frac  float64
	}{
		{pos: 0, index: 0, frac: 0},
		{pos: 0.5, index: 0, frac: 0.5},
		{pos: 3.25, index: 3, frac: 0.25},
		{pos: 7, index: 7, frac: 0},
	} {
		i, frac := Split(tc.pos)
		if i != tc.index || frac != tc.frac {
			t.Fatalf("Split(%v) = (%d, %v), want (%d, %v)", tc.pos, i, frac, tc.index, tc.frac)
		}
	}
}

func TestLinear2(t *testing.T) {
	for _, tc := range []struct {
		t, x0, x1, want float64
	}{
		{t: 0, x0: 2, x1: 4, want: 2},
		{t: 0.25, x0: 2, x1: 4, want: 2.5},
		{t: 0.5, x0: 0, x1: 1, want: 0.5},
		{t: 0.5, x0: 1, x1: -1, want: 0},
	} {
		if got := Linear2(tc.t, tc.x0, tc.x1); got != tc.want {
			t.Fatalf("Linear2(%v, %v, %v) = %v, want %v", tc.t, tc.x0, tc.x1, got, tc.want)
		}
	}
}

func TestLinear2ConstantIsExact(t *testing.T) {
	for _, frac := range []float64{0, 0.1, 0.333, 0.9} {
		if got := Linear2(frac, 1, 1); got != 1 {
			t.Fatalf("Linear2(%v, 1, 1) = %v, want 1", frac, got)
		}
	}
}

func BenchmarkLinear2(b *testing.B) {
	x := 0.0
	for i := 0; i < b.N; i++ {
		x = Linear2(0.37, x, 1)
	}
	_ = x
}
