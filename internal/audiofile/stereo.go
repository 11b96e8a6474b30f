package audiofile

import (
	"time"

	"github.com/cwbudde/algo-brake/dsp/core"
)

// Stereo is a decoded two-channel signal.
type Stereo struct {
	SampleRate int
	Left       []float64
	Right      []float64
}

// Frames returns the number of stereo frames.
func (s *Stereo) Frames() int { return min(len(s.Left), len(s.Right)) }

// Duration returns the playing time at SampleRate.
func (s *Stereo) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(s.Frames()) / float64(s.SampleRate) * float64(time.Second))
}

// Interleaved returns the signal as L, R, L, R, ... float32 samples.
func (s *Stereo) Interleaved() []float32 {
	out := make([]float32, 2*s.Frames())
	core.Interleave(out, s.Left, s.Right)
	return out
}

// fromInterleaved splits n-channel float samples in [-1, 1] into a stereo
// pair, duplicating mono and dropping channels past the second.
func fromInterleaved(samples []float64, channels, sampleRate int) (*Stereo, error) {
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	frames := len(samples) / channels
	s := &Stereo{
		SampleRate: sampleRate,
		Left:       make([]float64, frames),
		Right:      make([]float64, frames),
	}

	for i := 0; i < frames; i++ {
		base := i * channels
		s.Left[i] = samples[base]
		if channels > 1 {
			s.Right[i] = samples[base+1]
		} else {
			s.Right[i] = samples[base]
		}
	}
	return s, nil
}
