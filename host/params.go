package host

import (
	"fmt"

	"github.com/cwbudde/algo-brake/dsp/effects/brake"
)

// Stable parameter indices for host automation.
const (
	ParamBrake = iota
	ParamBrakeRate
	ParamCount
)

var paramNames = [ParamCount]string{
	ParamBrake:     "brake",
	ParamBrakeRate: "brake rate",
}

// Parameters exposes the brake controls by index, the way plugin hosts
// address them. All methods are safe to call from any goroutine while audio
// is being processed; they only perform atomic loads and stores on the
// underlying brake.Params.
type Parameters struct {
	p *brake.Params
}

// NewParameters wraps an existing parameter store.
func NewParameters(p *brake.Params) *Parameters {
	return &Parameters{p: p}
}

// Count returns the number of parameters.
func (ps *Parameters) Count() int { return ParamCount }

// Get returns the normalized value at index, or 0 for unknown indices.
func (ps *Parameters) Get(index int) float64 {
	switch index {
	case ParamBrake:
		return ps.p.EnabledValue()
	case ParamBrakeRate:
		return ps.p.DecayRate()
	default:
		return 0
	}
}

// Set writes the value at index. Unknown indices are ignored.
func (ps *Parameters) Set(index int, value float64) {
	switch index {
	case ParamBrake:
		ps.p.SetEnabled(value)
	case ParamBrakeRate:
		ps.p.SetDecayRate(value)
	}
}

// Name returns the display name at index, or "" for unknown indices.
func (ps *Parameters) Name(index int) string {
	if index < 0 || index >= ParamCount {
		return ""
	}
	return paramNames[index]
}

// Text returns the formatted current value at index, or "" for unknown indices.
func (ps *Parameters) Text(index int) string {
	switch index {
	case ParamBrake:
		if ps.p.Enabled() {
			return "enabled"
		}
		return "disabled"
	case ParamBrakeRate:
		return fmt.Sprintf("%.2f", ps.p.DecayRate())
	default:
		return ""
	}
}

// Index returns the index of the parameter called name.
func (ps *Parameters) Index(name string) (int, bool) {
	for i, n := range paramNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}
