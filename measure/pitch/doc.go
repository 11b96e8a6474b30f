// Package pitch estimates the dominant frequency of a signal over time.
//
// The tracker windows each analysis frame with a periodic Hann window, takes
// a forward FFT, and picks the strongest power-spectrum bin inside a
// configurable frequency range. The peak is refined by Gaussian (log-power
// parabolic) interpolation across the neighbouring bins, which is accurate to
// a small fraction of a bin for Hann-windowed sinusoids.
//
// It is intended for offline analysis, such as verifying that a brake
// rendering falls in pitch, and allocates only at construction time.
package pitch
