package audiofile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// Format identifies a container/codec pair.
type Format int

const (
	FormatUnknown Format = iota
	FormatWAV
	FormatAIFF
	FormatMP3
	FormatOgg
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatAIFF:
		return "aiff"
	case FormatMP3:
		return "mp3"
	case FormatOgg:
		return "ogg"
	default:
		return "unknown"
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV
	case ".aif", ".aiff", ".aifc":
		return FormatAIFF
	case ".mp3":
		return FormatMP3
	case ".ogg", ".oga":
		return FormatOgg
	default:
		return FormatUnknown
	}
}

// ReadFile decodes the file at path, choosing the decoder by extension.
func ReadFile(path string) (*Stereo, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: %w", err)
	}

	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a whole stream of the given format.
func Decode(r io.ReadSeeker, format Format) (*Stereo, error) {
	switch format {
	case FormatWAV:
		return decodeWAV(r)
	case FormatAIFF:
		return decodeAIFF(r)
	case FormatMP3:
		return decodeMP3(r)
	case FormatOgg:
		return decodeOgg(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

func decodeWAV(r io.ReadSeeker) (*Stereo, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a PCM wav file", ErrInvalidFile)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audiofile: wav: %w", err)
	}

	// 8-bit WAV is unsigned.
	return fromIntBuffer(buf, int(dec.BitDepth), dec.BitDepth == 8)
}

func decodeAIFF(r io.ReadSeeker) (*Stereo, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not an aiff file", ErrInvalidFile)
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, fmt.Errorf("%w: aiff without format", ErrInvalidFile)
	}

	const chunk = 4096
	all := &goaudio.IntBuffer{Format: format, SourceBitDepth: int(dec.BitDepth)}
	buf := &goaudio.IntBuffer{Format: format, Data: make([]int, chunk)}
	for {
		buf.Data = buf.Data[:chunk]
		n, err := dec.PCMBuffer(buf)
		all.Data = append(all.Data, buf.Data[:n]...)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("audiofile: aiff: %w", err)
		}
		if n == 0 || err != nil {
			break
		}
	}

	return fromIntBuffer(all, int(dec.BitDepth), false)
}

func fromIntBuffer(buf *goaudio.IntBuffer, bitDepth int, unsigned bool) (*Stereo, error) {
	if buf.Format == nil {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidFile)
	}

	full, err := fullScale(bitDepth)
	if err != nil {
		return nil, err
	}

	offset := 0.0
	if unsigned {
		offset = full
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = (float64(v) - offset) / full
	}
	return fromInterleaved(samples, buf.Format.NumChannels, buf.Format.SampleRate)
}

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8:
		return 128, nil
	case 16:
		return 32768, nil
	case 24:
		return 8388608, nil
	case 32:
		return 2147483648, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

// go-mp3 always yields 16-bit little-endian stereo.
func decodeMP3(r io.Reader) (*Stereo, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("audiofile: mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("audiofile: mp3: %w", err)
	}

	samples := make([]float64, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		samples[i] = float64(v) / 32768
	}
	return fromInterleaved(samples, 2, dec.SampleRate())
}

func decodeOgg(r io.Reader) (*Stereo, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("audiofile: ogg: %w", err)
	}

	samples := make([]float64, len(data))
	for i, v := range data {
		samples[i] = float64(v)
	}
	return fromInterleaved(samples, format.Channels, format.SampleRate)
}
