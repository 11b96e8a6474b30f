package pitch

import "github.com/cwbudde/algo-brake/dsp/core"

const (
	defaultFrameSize = 4096
	defaultMinFreq   = 20.0
)

// TrackerConfig defines the analysis settings of a Tracker.
type TrackerConfig struct {
	core.ProcessorConfig

	// FrameSize is the FFT length in samples; must be a power of two.
	FrameSize int
	// HopSize is the distance between successive frames in Track.
	// Zero selects FrameSize/4.
	HopSize int
	// MinFreq and MaxFreq bound the peak search in Hz. A MaxFreq of zero
	// selects the Nyquist frequency.
	MinFreq float64
	MaxFreq float64
}

// TrackerOption mutates a TrackerConfig.
type TrackerOption func(*TrackerConfig)

// DefaultTrackerConfig returns settings suited to music at common sample rates.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		FrameSize:       defaultFrameSize,
		MinFreq:         defaultMinFreq,
	}
}

// WithFrameSize sets the FFT length.
func WithFrameSize(n int) TrackerOption {
	return func(cfg *TrackerConfig) {
		if n > 0 {
			cfg.FrameSize = n
		}
	}
}

// WithHopSize sets the hop between frames in Track.
func WithHopSize(n int) TrackerOption {
	return func(cfg *TrackerConfig) {
		if n > 0 {
			cfg.HopSize = n
		}
	}
}

// WithRange limits the peak search to [minHz, maxHz].
func WithRange(minHz, maxHz float64) TrackerOption {
	return func(cfg *TrackerConfig) {
		if minHz >= 0 && maxHz > minHz {
			cfg.MinFreq = minHz
			cfg.MaxFreq = maxHz
		}
	}
}

// ApplyTrackerOptions applies zero or more options to the default config.
func ApplyTrackerOptions(sampleRate float64, opts ...TrackerOption) TrackerConfig {
	cfg := DefaultTrackerConfig()
	cfg.SampleRate = sampleRate

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
