package core

import "testing"

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestInterleaveRoundTrip(t *testing.T) {
	interleaved := []float32{0.25, -0.25, 0.5, -0.5, 1, -1}
	left := make([]float64, 3)
	right := make([]float64, 3)

	if n := Deinterleave(left, right, interleaved); n != 3 {
		t.Fatalf("Deinterleave frames = %d, want 3", n)
	}
	if left[1] != 0.5 || right[2] != -1 {
		t.Fatalf("unexpected split: left=%v right=%v", left, right)
	}

	out := make([]float32, 6)
	if n := Interleave(out, left, right); n != 3 {
		t.Fatalf("Interleave frames = %d, want 3", n)
	}
	for i := range out {
		if out[i] != interleaved[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], interleaved[i])
		}
	}
}

func TestDeinterleaveShortChannels(t *testing.T) {
	left := make([]float64, 1)
	right := make([]float64, 2)

	if n := Deinterleave(left, right, []float32{1, 2, 3, 4}); n != 1 {
		t.Fatalf("frames = %d, want 1", n)
	}
}
