package host

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-brake/dsp/core"
	"github.com/cwbudde/algo-brake/dsp/effects/brake"
)

const defaultMaxBlockSize = 1024

var (
	// ErrChannelCount is returned when a block does not carry exactly two
	// input and two output channels.
	ErrChannelCount = errors.New("host: blocks must have 2 input and 2 output channels")
	// ErrChannelLength is returned when channel buffers of one block differ in length.
	ErrChannelLength = errors.New("host: channel buffers must have equal length")
)

// Option mutates plugin construction parameters.
type Option func(*pluginConfig) error

type pluginConfig struct {
	maxBlockSize int
	brakeOpts    []brake.Option
}

// WithMaxBlockSize sets the chunk size used when converting float32 or
// interleaved audio. Larger host blocks are processed in several chunks
// sharing one enable-flag sample.
func WithMaxBlockSize(n int) Option {
	return func(cfg *pluginConfig) error {
		if n <= 0 {
			return fmt.Errorf("host max block size must be > 0: %d", n)
		}
		cfg.maxBlockSize = n
		return nil
	}
}

// WithBrakeOptions forwards options to the brake engine.
func WithBrakeOptions(opts ...brake.Option) Option {
	return func(cfg *pluginConfig) error {
		cfg.brakeOpts = append(cfg.brakeOpts, opts...)
		return nil
	}
}

// Plugin adapts the brake engine to a plugin-host style interface: static
// info, indexed parameters, sample-rate negotiation and per-block callbacks
// over channel slices.
//
// Process methods must be called from a single audio goroutine. Parameters
// may be used from any goroutine.
type Plugin struct {
	info   Info
	fx     *brake.Brake
	params *Parameters

	scratchL []float64
	scratchR []float64
}

// New creates a plugin running at sampleRate.
func New(sampleRate float64, opts ...Option) (*Plugin, error) {
	cfg := pluginConfig{maxBlockSize: defaultMaxBlockSize}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	fx, err := brake.New(sampleRate, cfg.brakeOpts...)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}

	return &Plugin{
		info:     DefaultInfo(),
		fx:       fx,
		params:   NewParameters(fx.Params()),
		scratchL: make([]float64, cfg.maxBlockSize),
		scratchR: make([]float64, cfg.maxBlockSize),
	}, nil
}

// Info returns the static plugin identity.
func (p *Plugin) Info() Info { return p.info }

// Parameters returns the indexed parameter view.
func (p *Plugin) Parameters() *Parameters { return p.params }

// Effect returns the underlying engine for inspection.
func (p *Plugin) Effect() *brake.Brake { return p.fx }

// SetSampleRate is called when the host announces its operating rate. It
// reallocates the recording and must not run concurrently with processing.
func (p *Plugin) SetSampleRate(sampleRate float64) error {
	if err := p.fx.SetSampleRate(sampleRate); err != nil {
		return fmt.Errorf("host: %w", err)
	}
	return nil
}

// SampleRate returns the current sample rate in Hz.
func (p *Plugin) SampleRate() float64 { return p.fx.SampleRate() }

// Process runs one block. inputs and outputs must each hold the left and
// right channel with equal lengths; outputs may alias inputs.
func (p *Plugin) Process(inputs, outputs [][]float64) error {
	if len(inputs) != channelCount || len(outputs) != channelCount {
		return fmt.Errorf("%w: got %d in, %d out", ErrChannelCount, len(inputs), len(outputs))
	}
	if err := checkLengths(len(inputs[0]), len(inputs[1]), len(outputs[0]), len(outputs[1])); err != nil {
		return err
	}
	return p.fx.ProcessStereo(inputs[0], inputs[1], outputs[0], outputs[1])
}

// ProcessFloat32 runs one block of 32-bit float channels.
func (p *Plugin) ProcessFloat32(inputs, outputs [][]float32) error {
	if len(inputs) != channelCount || len(outputs) != channelCount {
		return fmt.Errorf("%w: got %d in, %d out", ErrChannelCount, len(inputs), len(outputs))
	}
	n := len(inputs[0])
	if err := checkLengths(n, len(inputs[1]), len(outputs[0]), len(outputs[1])); err != nil {
		return err
	}

	enabled := p.params.p.Enabled()
	for start := 0; start < n || start == 0; start += len(p.scratchL) {
		end := min(start+len(p.scratchL), n)
		l := p.scratchL[:end-start]
		r := p.scratchR[:end-start]

		for i := range l {
			l[i] = float64(inputs[0][start+i])
			r[i] = float64(inputs[1][start+i])
		}
		if err := p.fx.ProcessStereoLatched(enabled, l, r, l, r); err != nil {
			return err
		}
		for i := range l {
			outputs[0][start+i] = float32(l[i])
			outputs[1][start+i] = float32(r[i])
		}
	}
	return nil
}

// ProcessInterleaved runs one block of interleaved stereo (L, R, L, R, ...)
// in place, the layout audio devices deliver.
func (p *Plugin) ProcessInterleaved(buf []float32) error {
	if len(buf)%channelCount != 0 {
		return fmt.Errorf("%w: interleaved length %d is odd", ErrChannelLength, len(buf))
	}

	enabled := p.params.p.Enabled()
	chunk := len(p.scratchL) * channelCount
	for start := 0; start < len(buf) || start == 0; start += chunk {
		part := buf[start:min(start+chunk, len(buf))]

		n := core.Deinterleave(p.scratchL, p.scratchR, part)
		l, r := p.scratchL[:n], p.scratchR[:n]
		if err := p.fx.ProcessStereoLatched(enabled, l, r, l, r); err != nil {
			return err
		}
		core.Interleave(part, l, r)
	}
	return nil
}

func checkLengths(n int, others ...int) error {
	for _, m := range others {
		if m != n {
			return fmt.Errorf("%w: %d != %d", ErrChannelLength, m, n)
		}
	}
	return nil
}
