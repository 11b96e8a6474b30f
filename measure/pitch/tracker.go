package pitch

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-brake/dsp/core"
	"github.com/cwbudde/algo-brake/dsp/window"
)

// ErrFrameTooLong is returned when Estimate receives more samples than the FFT size.
var ErrFrameTooLong = errors.New("pitch: frame longer than FFT size")

// silenceFloor is the peak power below which a frame is reported as unpitched.
const silenceFloor = 1e-20

// Estimate is the dominant frequency of one analysis frame.
type Estimate struct {
	// Frequency in Hz, or 0 for a silent frame.
	Frequency float64
	// Power is the squared magnitude of the peak bin.
	Power float64
	// Amplitude is the peak level of a sinusoid that would produce Power,
	// corrected for the window's coherent gain.
	Amplitude float64
}

// Point is an Estimate located in time.
type Point struct {
	// Time is the centre of the analysed span in seconds.
	Time float64
	Estimate
}

// Tracker finds the strongest spectral peak in successive frames.
type Tracker struct {
	cfg   TrackerConfig
	plan  *algofft.Plan[complex128]
	loBin int
	hiBin int

	window []float64
	gain   float64
	frame  []float64
	in     []complex128
	out    []complex128
	re     []float64
	im     []float64
	power  []float64
}

// NewTracker creates a tracker for signals sampled at sampleRate.
func NewTracker(sampleRate float64, opts ...TrackerOption) (*Tracker, error) {
	cfg := ApplyTrackerOptions(sampleRate, opts...)
	if !core.ValidSampleRate(cfg.SampleRate) {
		return nil, fmt.Errorf("pitch tracker sample rate must be > 0 and finite: %f", cfg.SampleRate)
	}

	n := cfg.FrameSize
	if n < 4 || n&(n-1) != 0 {
		return nil, fmt.Errorf("pitch tracker frame size must be a power of two >= 4: %d", n)
	}
	if cfg.HopSize == 0 {
		cfg.HopSize = n / 4
	}

	nyquist := cfg.SampleRate / 2
	if cfg.MaxFreq <= 0 || cfg.MaxFreq > nyquist {
		cfg.MaxFreq = nyquist
	}

	bins := n/2 + 1
	binHz := cfg.SampleRate / float64(n)
	lo := max(1, int(math.Ceil(cfg.MinFreq/binHz)))
	hi := min(bins-2, int(math.Floor(cfg.MaxFreq/binHz)))
	if lo > hi {
		return nil, fmt.Errorf("pitch tracker range [%g, %g] Hz holds no bins at %g Hz resolution",
			cfg.MinFreq, cfg.MaxFreq, binHz)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("pitch tracker: fft plan: %w", err)
	}

	coeffs := window.Generate(window.TypeHann, n, window.WithPeriodic())
	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return nil, fmt.Errorf("pitch tracker: %w", err)
	}

	return &Tracker{
		cfg:    cfg,
		plan:   plan,
		loBin:  lo,
		hiBin:  hi,
		window: coeffs,
		gain:   gain,
		frame:  make([]float64, n),
		in:     make([]complex128, n),
		out:    make([]complex128, n),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		power:  make([]float64, bins),
	}, nil
}

// Config returns the effective configuration.
func (t *Tracker) Config() TrackerConfig { return t.cfg }

// BinWidth returns the FFT bin spacing in Hz.
func (t *Tracker) BinWidth() float64 {
	return t.cfg.SampleRate / float64(t.cfg.FrameSize)
}

// Estimate analyses one frame. Frames shorter than the FFT size are
// zero-padded.
func (t *Tracker) Estimate(frame []float64) (Estimate, error) {
	if len(frame) > len(t.frame) {
		return Estimate{}, fmt.Errorf("%w: %d > %d", ErrFrameTooLong, len(frame), len(t.frame))
	}

	n := copy(t.frame, frame)
	core.Zero(t.frame[n:])
	if err := window.ApplyCoefficientsInPlace(t.frame, t.window); err != nil {
		return Estimate{}, fmt.Errorf("pitch tracker: %w", err)
	}

	for i, v := range t.frame {
		t.in[i] = complex(v, 0)
	}

	if err := t.plan.Forward(t.out, t.in); err != nil {
		return Estimate{}, fmt.Errorf("pitch tracker: forward fft: %w", err)
	}

	for k := range t.power {
		t.re[k] = real(t.out[k])
		t.im[k] = imag(t.out[k])
	}
	vecmath.Power(t.power, t.re, t.im)

	peak := t.loBin
	for k := t.loBin + 1; k <= t.hiBin; k++ {
		if t.power[k] > t.power[peak] {
			peak = k
		}
	}

	p := t.power[peak]
	amp := 2 * math.Sqrt(p) / (float64(len(t.frame)) * t.gain)
	if p < silenceFloor {
		return Estimate{Power: p, Amplitude: amp}, nil
	}

	return Estimate{
		Frequency: (float64(peak) + t.refine(peak)) * t.BinWidth(),
		Power:     p,
		Amplitude: amp,
	}, nil
}

// Track estimates the pitch of every hop of signal. The final frame may be
// partial.
func (t *Tracker) Track(signal []float64) ([]Point, error) {
	if len(signal) == 0 {
		return nil, nil
	}

	hop := t.cfg.HopSize
	points := make([]Point, 0, len(signal)/hop+1)

	for start := 0; start < len(signal); start += hop {
		end := min(start+t.cfg.FrameSize, len(signal))

		est, err := t.Estimate(signal[start:end])
		if err != nil {
			return nil, err
		}

		center := float64(start) + float64(end-start)/2
		points = append(points, Point{Time: center / t.cfg.SampleRate, Estimate: est})

		if end == len(signal) {
			break
		}
	}

	return points, nil
}

// refine returns the fractional bin offset of the true peak around bin k.
func (t *Tracker) refine(k int) float64 {
	a := math.Log(t.power[k-1] + silenceFloor)
	b := math.Log(t.power[k] + silenceFloor)
	c := math.Log(t.power[k+1] + silenceFloor)

	denom := a - 2*b + c
	if denom >= 0 {
		return 0
	}

	return core.Clamp(0.5*(a-c)/denom, -0.5, 0.5)
}
