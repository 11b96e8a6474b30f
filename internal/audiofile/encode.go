package audiofile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-brake/dsp/core"
)

const wavFormatPCM = 1

// WriteWAV encodes s as integer PCM WAV with the given bit depth (16 or 24).
// Samples outside [-1, 1] are clipped.
func WriteWAV(w io.WriteSeeker, s *Stereo, bitDepth int) error {
	buf, err := toIntBuffer(s, bitDepth)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, s.SampleRate, bitDepth, 2, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audiofile: wav encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: wav encode: %w", err)
	}
	return nil
}

// WriteAIFF encodes s as big-endian PCM AIFF with the given bit depth (16 or
// 24). Samples outside [-1, 1] are clipped.
func WriteAIFF(w io.WriteSeeker, s *Stereo, bitDepth int) error {
	buf, err := toIntBuffer(s, bitDepth)
	if err != nil {
		return err
	}

	enc := aiff.NewEncoder(w, s.SampleRate, bitDepth, 2)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audiofile: aiff encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: aiff encode: %w", err)
	}
	return nil
}

// WriteFile creates path and writes s to it. Paths ending in .aif or .aiff
// are written as AIFF, everything else as WAV.
func WriteFile(path string, s *Stereo, bitDepth int) (err error) {
	write := WriteWAV
	if FormatFromPath(path) == FormatAIFF {
		write = WriteAIFF
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("audiofile: %w", cerr)
		}
	}()

	return write(f, s, bitDepth)
}

func toIntBuffer(s *Stereo, bitDepth int) (*goaudio.IntBuffer, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if s.SampleRate <= 0 {
		return nil, fmt.Errorf("audiofile: sample rate must be > 0: %d", s.SampleRate)
	}

	peak := math.Ldexp(1, bitDepth-1) - 1
	frames := s.Frames()
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: s.SampleRate},
		Data:           make([]int, 2*frames),
		SourceBitDepth: bitDepth,
	}
	for i := 0; i < frames; i++ {
		buf.Data[2*i] = quantize(s.Left[i], peak)
		buf.Data[2*i+1] = quantize(s.Right[i], peak)
	}
	return buf, nil
}

func quantize(x, peak float64) int {
	return int(math.Round(core.Clamp(x, -1, 1) * peak))
}
