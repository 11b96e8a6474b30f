package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Deinterleave splits an interleaved stereo buffer (L, R, L, R, ...) into
// left and right. It returns the number of frames written, bounded by the
// shortest of the three buffers.
func Deinterleave(left, right []float64, interleaved []float32) int {
	n := len(interleaved) / 2
	if len(left) < n {
		n = len(left)
	}
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		left[i] = float64(interleaved[2*i])
		right[i] = float64(interleaved[2*i+1])
	}
	return n
}

// Interleave is the inverse of Deinterleave.
func Interleave(interleaved []float32, left, right []float64) int {
	n := len(interleaved) / 2
	if len(left) < n {
		n = len(left)
	}
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		interleaved[2*i] = float32(left[i])
		interleaved[2*i+1] = float32(right[i])
	}
	return n
}
