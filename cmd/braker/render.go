package main

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-brake/dsp/core"
	"github.com/cwbudde/algo-brake/dsp/effects/brake"
	"github.com/cwbudde/algo-brake/host"
	"github.com/cwbudde/algo-brake/internal/audiofile"
	"github.com/cwbudde/algo-brake/internal/automation"
)

type renderConfig struct {
	Processor core.ProcessorConfig
	DecayRate float64
	GainDB    float64
	Schedule  *automation.Schedule
}

// render runs src through the plugin block by block, applying scheduled
// parameter changes at block starts. Blocks are cut short at event frames.
func render(src *audiofile.Stereo, cfg renderConfig) (*audiofile.Stereo, error) {
	if src.SampleRate <= 0 {
		return nil, fmt.Errorf("render: invalid sample rate %d", src.SampleRate)
	}
	sampleRate := float64(src.SampleRate)

	plugin, err := host.New(sampleRate,
		host.WithMaxBlockSize(cfg.Processor.BlockSize),
		host.WithBrakeOptions(brake.WithDecayRate(cfg.DecayRate)),
	)
	if err != nil {
		return nil, err
	}

	n := src.Frames()
	out := &audiofile.Stereo{
		SampleRate: src.SampleRate,
		Left:       make([]float64, n),
		Right:      make([]float64, n),
	}

	cursor := automation.NewCursor(cfg.Schedule, sampleRate)
	params := plugin.Parameters()

	for start := 0; start < n; {
		cursor.Apply(params, start)

		end := cfg.Processor.BlockEnd(start, n)
		if next, ok := cursor.NextFrame(); ok {
			end = cfg.Processor.BlockEnd(start, n, next)
		}

		err := plugin.Process(
			[][]float64{src.Left[start:end], src.Right[start:end]},
			[][]float64{out.Left[start:end], out.Right[start:end]},
		)
		if err != nil {
			return nil, fmt.Errorf("render: frame %d: %w", start, err)
		}
		start = end
	}

	if cfg.GainDB != 0 {
		g := core.DBToLinear(cfg.GainDB)
		vecmath.ScaleBlockInPlace(out.Left, g)
		vecmath.ScaleBlockInPlace(out.Right, g)
	}

	return out, nil
}
