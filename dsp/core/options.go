package core

import "math"

// ProcessorConfig describes how a stream is cut into processing blocks.
// Hosts that change parameters between blocks split a block early at the
// change so it lands on an exact frame.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 44.1 kHz in blocks of 512 frames.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BlockSize:  512,
	}
}

// WithSampleRate sets the stream rate. Invalid rates are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if ValidSampleRate(sampleRate) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the largest block length. Non-positive sizes are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// FrameAt returns the frame nearest to seconds. Negative or non-finite times
// map to frame 0.
func (c ProcessorConfig) FrameAt(seconds float64) int {
	if !(seconds > 0) || math.IsInf(seconds, 1) {
		return 0
	}
	return int(math.Round(seconds * c.SampleRate))
}

// BlockEnd returns the exclusive end of the block that starts at start in a
// stream of total frames. The block never exceeds BlockSize and is cut short
// at the first split point strictly inside it.
func (c ProcessorConfig) BlockEnd(start, total int, splits ...int) int {
	end := min(start+max(c.BlockSize, 1), total)
	for _, s := range splits {
		if s > start && s < end {
			end = s
		}
	}
	return end
}
