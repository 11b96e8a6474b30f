package brake

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-brake/dsp/core"
)

const (
	// DefaultDecayRate is the decay rate a new parameter store starts with.
	DefaultDecayRate = 0.9999

	enabledThreshold = 0.5
)

// Params holds the two user-facing brake controls.
//
// Each value lives in its own atomic cell storing IEEE-754 bits. Reads and
// writes never block and the two cells carry no transactional relationship:
// a reader may observe a new enable flag together with an old decay rate.
type Params struct {
	enabled   atomic.Uint64
	decayRate atomic.Uint64
}

// NewParams returns a store with the brake disengaged and the default decay rate.
func NewParams() *Params {
	p := &Params{}
	p.decayRate.Store(math.Float64bits(DefaultDecayRate))
	return p
}

// SetEnabled binarizes a continuous control value: values above 0.5 engage
// the brake, everything else (including NaN) releases it.
func (p *Params) SetEnabled(value float64) {
	stored := 0.0
	if value > enabledThreshold {
		stored = 1
	}
	p.enabled.Store(math.Float64bits(stored))
}

// Enabled reports whether the brake is engaged.
func (p *Params) Enabled() bool {
	return p.EnabledValue() > enabledThreshold
}

// EnabledValue returns the stored control value, either 0 or 1.
func (p *Params) EnabledValue() float64 {
	return math.Float64frombits(p.enabled.Load())
}

// SetDecayRate stores rate clamped to [0, 1].
func (p *Params) SetDecayRate(rate float64) {
	p.decayRate.Store(math.Float64bits(core.Clamp(rate, 0, 1)))
}

// DecayRate returns the current decay rate in [0, 1].
func (p *Params) DecayRate() float64 {
	return math.Float64frombits(p.decayRate.Load())
}
