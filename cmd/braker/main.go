// Command braker renders the turntable brake effect onto an audio file.
//
// Usage:
//
//	braker [flags] input output.wav
//
// The input may be WAV, AIFF, MP3 or Ogg Vorbis. The output is AIFF when its
// name ends in .aif or .aiff and WAV otherwise. Without -auto or -at the
// brake engages at the start of the file.
//
// Examples:
//
//	braker -at 2.5 in.wav out.wav
//	braker -at 1 -rate 0.2 -gain -3 in.mp3 out.wav
//	braker -auto stops.yaml -bits 24 in.aiff out.aiff
//	braker -analyze -at 0.5 in.ogg out.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/algo-brake/dsp/core"
	"github.com/cwbudde/algo-brake/dsp/effects/brake"
	"github.com/cwbudde/algo-brake/internal/audiofile"
	"github.com/cwbudde/algo-brake/internal/automation"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("braker: ")

	autoPath := flag.String("auto", "", "YAML automation schedule")
	at := flag.Float64("at", 0, "time in seconds at which the brake engages (ignored with -auto)")
	rate := flag.Float64("rate", brake.DefaultDecayRate, "brake rate in [0, 1]; lower stops faster")
	block := flag.Int("block", core.DefaultProcessorConfig().BlockSize, "processing block size in frames")
	gain := flag.Float64("gain", 0, "output gain in dB")
	bits := flag.Int("bits", 16, "output bit depth (16 or 24)")
	dither := flag.Bool("dither", false, "add TPDF dither before quantizing")
	analyze := flag.Bool("analyze", false, "print the pitch of the rendered result over time")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: braker [flags] input output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Renders a turntable stop onto an audio file (WAV or AIFF output).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  braker -at 2.5 in.wav out.wav\n")
		fmt.Fprintf(os.Stderr, "  braker -auto stops.yaml -bits 24 in.aiff out.wav\n")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	src, err := audiofile.ReadFile(inPath)
	if err != nil {
		log.Fatal(err)
	}

	var schedule *automation.Schedule
	if *autoPath != "" {
		schedule, err = automation.Load(*autoPath)
	} else {
		schedule, err = engageAt(*at)
	}
	if err != nil {
		log.Fatal(err)
	}

	cfg := renderConfig{
		Processor: core.ApplyProcessorOptions(
			core.WithSampleRate(float64(src.SampleRate)),
			core.WithBlockSize(*block),
		),
		DecayRate: *rate,
		GainDB:    *gain,
		Schedule:  schedule,
	}

	out, err := render(src, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *dither {
		if err := audiofile.Dither(out, *bits, 1); err != nil {
			log.Fatal(err)
		}
	}
	if err := audiofile.WriteFile(outPath, out, *bits); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s: %d frames at %d Hz (%v)", outPath, out.Frames(), out.SampleRate, out.Duration())

	if *analyze {
		if err := printPitchTable(os.Stdout, out); err != nil {
			log.Fatal(err)
		}
	}
}

// engageAt builds a schedule with a single brake-on event.
func engageAt(seconds float64) (*automation.Schedule, error) {
	on := 1.0
	s := &automation.Schedule{Events: []automation.Event{{At: seconds, Brake: &on}}}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
