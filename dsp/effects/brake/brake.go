package brake

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-brake/dsp/core"
)

const (
	// SilenceSpeed is the playback speed below which output is muted.
	SilenceSpeed = 0.01

	baseDecay = 0.999
)

// maxDecayMultiplier keeps the per-sample decay strictly below one. At a
// decay rate of exactly 1 the decay law evaluates to 1.0 in float64.
var maxDecayMultiplier = math.Nextafter(1, 0)

// DecayMultiplier returns the per-sample speed multiplier for a decay rate
// in [0, 1]. Higher rates brake more gently. The result lies in [0.9995, 1).
func DecayMultiplier(rate float64) float64 {
	m := baseDecay + (0.5+rate/2)/1000
	if m > maxDecayMultiplier {
		return maxDecayMultiplier
	}
	return m
}

// State is the engine mode chosen at the start of each block.
type State int

const (
	// StatePassthrough copies input to output and discards braking progress.
	StatePassthrough State = iota
	// StateBraking records the input and plays it back at a decaying speed.
	StateBraking
)

func (s State) String() string {
	switch s {
	case StatePassthrough:
		return "passthrough"
	case StateBraking:
		return "braking"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option mutates brake construction parameters.
type Option func(*Params) error

// WithDecayRate sets the initial decay rate in [0, 1].
func WithDecayRate(rate float64) Option {
	return func(p *Params) error {
		if rate < 0 || rate > 1 || math.IsNaN(rate) {
			return fmt.Errorf("brake decay rate must be in [0, 1]: %f", rate)
		}
		p.SetDecayRate(rate)
		return nil
	}
}

// WithEnabled sets whether the brake starts engaged.
func WithEnabled(enabled bool) Option {
	return func(p *Params) error {
		if enabled {
			p.SetEnabled(1)
		} else {
			p.SetEnabled(0)
		}
		return nil
	}
}

// Brake is a stereo turntable-stop processor.
//
// The enable flag is sampled once per processed block. The decay rate is
// sampled on every frame so automation of the rate takes effect immediately.
//
// Brake is real-time safe and not thread-safe, except for its Params which
// may be written from any goroutine.
type Brake struct {
	sampleRate float64
	params     *Params
	rec        RecordBuffer

	state      State
	readCursor float64
	speed      float64
}

// New creates a brake for sampleRate with a disengaged brake and the default
// decay rate unless overridden by opts.
func New(sampleRate float64, opts ...Option) (*Brake, error) {
	if !core.ValidSampleRate(sampleRate) {
		return nil, fmt.Errorf("brake sample rate must be > 0 and finite: %f", sampleRate)
	}

	params := NewParams()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(params); err != nil {
			return nil, err
		}
	}

	b := &Brake{
		sampleRate: sampleRate,
		params:     params,
	}
	b.rec.Resize(sampleRate)
	b.Reset()
	return b, nil
}

// SetSampleRate resizes the recording for sampleRate, discarding any recorded
// audio, and resets playback state.
func (b *Brake) SetSampleRate(sampleRate float64) error {
	if !core.ValidSampleRate(sampleRate) {
		return fmt.Errorf("brake sample rate must be > 0 and finite: %f", sampleRate)
	}
	b.sampleRate = sampleRate
	b.rec.Resize(sampleRate)
	b.Reset()
	return nil
}

// Reset returns the engine to passthrough with a rewound recording and unit speed.
func (b *Brake) Reset() {
	b.state = StatePassthrough
	b.readCursor = 0
	b.speed = 1
	b.rec.Reset()
}

// Params returns the parameter store shared with the control side.
func (b *Brake) Params() *Params { return b.params }

// ProcessStereo processes one block of paired left/right buffers. The output
// buffers may alias the inputs. All four buffers must have the same length;
// every output frame is written.
func (b *Brake) ProcessStereo(inL, inR, outL, outR []float64) error {
	return b.ProcessStereoLatched(b.params.Enabled(), inL, inR, outL, outR)
}

// ProcessStereoLatched is ProcessStereo with an enable flag the caller
// sampled itself. Hosts that split one callback into several chunks sample
// Params().Enabled() once per callback and pass it to every chunk.
func (b *Brake) ProcessStereoLatched(enabled bool, inL, inR, outL, outR []float64) error {
	n := len(inL)
	if len(inR) != n || len(outL) != n || len(outR) != n {
		return fmt.Errorf("brake: stereo buffers must have equal length: in=%d/%d out=%d/%d",
			len(inL), len(inR), len(outL), len(outR))
	}

	if !enabled {
		b.Reset()
		copy(outL, inL)
		copy(outR, inR)
		return nil
	}

	b.state = StateBraking
	for i := 0; i < n; i++ {
		outL[i], outR[i] = b.brakeFrame(inL[i], inR[i])
	}
	return nil
}

// ProcessStereoInPlace processes left and right as one block in place.
func (b *Brake) ProcessStereoInPlace(left, right []float64) error {
	return b.ProcessStereo(left, right, left, right)
}

// ProcessFrame processes a single frame as a block of length one, so the
// enable flag is sampled for this frame.
func (b *Brake) ProcessFrame(left, right float64) (float64, float64) {
	if !b.params.Enabled() {
		b.Reset()
		return left, right
	}
	b.state = StateBraking
	return b.brakeFrame(left, right)
}

// brakeFrame records one frame, renders one output frame, then advances the
// read head and decays the speed.
func (b *Brake) brakeFrame(left, right float64) (float64, float64) {
	b.rec.Append(left, right)

	var outL, outR float64
	if b.speed >= SilenceSpeed && b.readCursor < float64(b.rec.WriteCursor()-1) {
		outL, outR = b.rec.ReadInterpolated(b.readCursor)
	}

	b.readCursor += b.speed
	if next := b.speed * DecayMultiplier(b.params.DecayRate()); next > 0 {
		b.speed = next
	}
	return outL, outR
}

// SampleRate returns the sample rate in Hz.
func (b *Brake) SampleRate() float64 { return b.sampleRate }

// State returns the mode of the most recently processed block.
func (b *Brake) State() State { return b.state }

// Speed returns the current playback speed in (0, 1].
func (b *Brake) Speed() float64 { return b.speed }

// ReadCursor returns the fractional playback position in frames.
func (b *Brake) ReadCursor() float64 { return b.readCursor }

// WriteCursor returns the number of frames recorded in the current episode.
func (b *Brake) WriteCursor() int { return b.rec.WriteCursor() }

// Capacity returns the recording capacity in frames.
func (b *Brake) Capacity() int { return b.rec.Len() }

// Silent reports whether the playback has decayed below the audible floor.
func (b *Brake) Silent() bool { return b.speed < SilenceSpeed }
