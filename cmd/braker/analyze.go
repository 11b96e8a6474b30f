package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-brake/dsp/core"
	"github.com/cwbudde/algo-brake/internal/audiofile"
	"github.com/cwbudde/algo-brake/measure/pitch"
)

const analysisFrame = 4096

// printPitchTable tracks the dominant frequency of the mid channel and prints
// it alongside its ratio to the first pitched frame, which follows the
// playback speed while the brake is engaged.
func printPitchTable(w io.Writer, s *audiofile.Stereo) error {
	points, err := analyzePitch(s)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Time (s)\tPitch (Hz)\tRatio\tLevel (dB)\t")
	fmt.Fprintln(tw, "--------\t----------\t-----\t----------\t")

	ref := 0.0
	for _, p := range points {
		if p.Frequency == 0 {
			fmt.Fprintf(tw, "%.3f\t-\t-\t-\t\n", p.Time)
			continue
		}
		if ref == 0 {
			ref = p.Frequency
		}
		level := core.LinearToDB(p.Amplitude)
		fmt.Fprintf(tw, "%.3f\t%.1f\t%.3f\t%.1f\t\n", p.Time, p.Frequency, p.Frequency/ref, level)
	}

	return tw.Flush()
}

func analyzePitch(s *audiofile.Stereo) ([]pitch.Point, error) {
	frames := s.Frames()
	mid := make([]float64, frames)
	copy(mid, s.Left[:frames])
	vecmath.AddBlockInPlace(mid, s.Right[:frames])
	vecmath.ScaleBlockInPlace(mid, 0.5)

	tracker, err := pitch.NewTracker(float64(s.SampleRate),
		pitch.WithFrameSize(analysisFrame),
		pitch.WithHopSize(analysisFrame/2),
	)
	if err != nil {
		return nil, err
	}
	return tracker.Track(mid)
}
