// Package automation schedules parameter changes for offline renders.
//
// A schedule is a YAML document:
//
//	events:
//	  - at: 1.5      # seconds
//	    brake: 1
//	  - at: 1.5
//	    rate: 0.4
//	  - at: 6
//	    brake: 0
package automation

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-brake/dsp/core"
	"github.com/cwbudde/algo-brake/host"
)

// ErrInvalidEvent reports an event that cannot be scheduled.
var ErrInvalidEvent = errors.New("automation: invalid event")

// Event sets one or both parameters at a point in time. Nil fields are left
// unchanged.
type Event struct {
	At    float64  `yaml:"at"`
	Brake *float64 `yaml:"brake,omitempty"`
	Rate  *float64 `yaml:"rate,omitempty"`
}

// Schedule is an ordered list of events.
type Schedule struct {
	Events []Event `yaml:"events"`
}

// Parse decodes and validates a YAML schedule. Events are sorted by time;
// events sharing a time keep their document order.
func Parse(data []byte) (*Schedule, error) {
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("automation: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].At < s.Events[j].At })
	return &s, nil
}

// Load reads and parses the schedule at path.
func Load(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("automation: %w", err)
	}
	return Parse(data)
}

// Validate checks every event for a finite, non-negative time, at least one
// parameter, and finite values.
func (s *Schedule) Validate() error {
	for i, ev := range s.Events {
		if !core.IsFinite(ev.At) || ev.At < 0 {
			return fmt.Errorf("%w: event %d: time must be >= 0 and finite: %v", ErrInvalidEvent, i, ev.At)
		}
		if ev.Brake == nil && ev.Rate == nil {
			return fmt.Errorf("%w: event %d at %vs sets no parameter", ErrInvalidEvent, i, ev.At)
		}
		for _, v := range []*float64{ev.Brake, ev.Rate} {
			if v != nil && !core.IsFinite(*v) {
				return fmt.Errorf("%w: event %d at %vs: value must be finite", ErrInvalidEvent, i, ev.At)
			}
		}
	}
	return nil
}

// Frame converts the event time to a frame index at sampleRate.
func (ev Event) Frame(sampleRate float64) int {
	return core.ProcessorConfig{SampleRate: sampleRate}.FrameAt(ev.At)
}

// Cursor walks a schedule alongside a render.
type Cursor struct {
	events     []Event
	sampleRate float64
	next       int
}

// NewCursor starts a cursor at the beginning of s.
func NewCursor(s *Schedule, sampleRate float64) *Cursor {
	c := &Cursor{sampleRate: sampleRate}
	if s != nil {
		c.events = s.Events
	}
	return c
}

// Apply writes every pending event due at or before frame into params and
// returns how many were applied.
func (c *Cursor) Apply(params *host.Parameters, frame int) int {
	applied := 0
	for c.next < len(c.events) && c.events[c.next].Frame(c.sampleRate) <= frame {
		ev := c.events[c.next]
		if ev.Brake != nil {
			params.Set(host.ParamBrake, *ev.Brake)
		}
		if ev.Rate != nil {
			params.Set(host.ParamBrakeRate, *ev.Rate)
		}
		c.next++
		applied++
	}
	return applied
}

// NextFrame returns the frame of the next pending event. Renderers end a
// block there so the event lands on its own block boundary.
func (c *Cursor) NextFrame() (int, bool) {
	if c.next >= len(c.events) {
		return 0, false
	}
	return c.events[c.next].Frame(c.sampleRate), true
}

// Done reports whether every event has been applied.
func (c *Cursor) Done() bool { return c.next >= len(c.events) }
