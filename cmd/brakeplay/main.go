// Command brakeplay loops an audio file through the brake in real time.
//
// Usage:
//
//	brakeplay [flags] input
//
// Keys: space toggles the brake, + and - change the brake rate, q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"golang.org/x/term"

	"github.com/cwbudde/algo-brake/dsp/effects/brake"
	"github.com/cwbudde/algo-brake/host"
	"github.com/cwbudde/algo-brake/internal/audiofile"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("brakeplay: ")

	rate := flag.Float64("rate", brake.DefaultDecayRate, "initial brake rate in [0, 1]")
	bufferMS := flag.Int("buffer", 50, "device buffer length in milliseconds")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: brakeplay [flags] input\n\n")
		fmt.Fprintf(os.Stderr, "Plays a file in a loop through the turntable brake.\n")
		fmt.Fprintf(os.Stderr, "Keys: space toggles the brake, + and - change the brake rate, q quits.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	src, err := audiofile.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	plugin, err := host.New(float64(src.SampleRate),
		host.WithBrakeOptions(brake.WithDecayRate(*rate)),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   src.SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(*bufferMS) * time.Millisecond,
	})
	if err != nil {
		log.Fatal(err)
	}
	<-ready

	player := ctx.NewPlayer(newLoopStream(plugin, src.Interleaved()))
	player.Play()
	defer player.Close()

	log.Printf("%s: %d Hz, %v", flag.Arg(0), src.SampleRate, src.Duration())

	if err := runKeys(plugin.Parameters()); err != nil {
		log.Print(err)
	}
}

// runKeys reads single key presses from a raw terminal until quit.
func runKeys(params *host.Parameters) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, old) }()

	fmt.Print(statusLine(params))
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}

		switch handleKey(params, buf[0]) {
		case actionQuit:
			fmt.Print("\r\n")
			return nil
		case actionChanged:
			fmt.Print(statusLine(params))
		}
	}
}
