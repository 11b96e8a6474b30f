package main

import (
	"encoding/binary"
	"math"

	"github.com/cwbudde/algo-brake/host"
)

const bytesPerFrame = 2 * 4 // stereo float32 little-endian

// loopStream is the io.Reader oto pulls from. It loops the decoded file and
// runs every pulled block through the plugin.
type loopStream struct {
	plugin  *host.Plugin
	samples []float32 // interleaved source
	pos     int       // next sample index in samples
	block   []float32
}

func newLoopStream(plugin *host.Plugin, interleaved []float32) *loopStream {
	return &loopStream{
		plugin:  plugin,
		samples: interleaved,
		block:   make([]float32, 4096),
	}
}

func (s *loopStream) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	n := 2 * frames
	if cap(s.block) < n {
		s.block = make([]float32, n)
	}
	block := s.block[:n]
	s.fill(block)

	if err := s.plugin.ProcessInterleaved(block); err != nil {
		return 0, err
	}

	for i, v := range block {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}
	return n * 4, nil
}

func (s *loopStream) fill(dst []float32) {
	if len(s.samples) == 0 {
		clear(dst)
		return
	}
	for filled := 0; filled < len(dst); {
		c := copy(dst[filled:], s.samples[s.pos:])
		filled += c
		s.pos += c
		if s.pos >= len(s.samples) {
			s.pos = 0
		}
	}
}
