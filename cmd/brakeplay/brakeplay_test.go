package main

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-brake/dsp/effects/brake"
	"github.com/cwbudde/algo-brake/host"
)

func newTestPlugin(t *testing.T) *host.Plugin {
	t.Helper()

	p, err := host.New(1000)
	if err != nil {
		t.Fatalf("host.New() error = %v", err)
	}
	return p
}

func decodeFloats(p []byte) []float32 {
	out := make([]float32, len(p)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[4*i:]))
	}
	return out
}

func TestLoopStreamWrapsSource(t *testing.T) {
	s := newLoopStream(newTestPlugin(t), []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6})

	// 4 frames plus a stray byte, of which only whole frames are served.
	p := make([]byte, 4*bytesPerFrame+1)
	n, err := s.Read(p)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 4*bytesPerFrame {
		t.Fatalf("Read() = %d bytes, want %d", n, 4*bytesPerFrame)
	}

	want := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.1, 0.2}
	got := decodeFloats(p[:n])
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d = %v, want %v (got %v)", i, got[i], want[i], got)
		}
	}
}

func TestLoopStreamBrakes(t *testing.T) {
	plugin := newTestPlugin(t)
	plugin.Parameters().Set(host.ParamBrake, 1)

	src := make([]float32, 2*64)
	for i := range src {
		src[i] = 0.5
	}
	s := newLoopStream(plugin, src)

	p := make([]byte, 100*bytesPerFrame)
	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	got := decodeFloats(p)
	if got[0] != 0 || got[1] != 0 {
		t.Fatalf("first frame = (%v, %v), want silence", got[0], got[1])
	}
	if plugin.Effect().WriteCursor() != 100 {
		t.Fatalf("WriteCursor() = %d, want 100", plugin.Effect().WriteCursor())
	}
}

func TestLoopStreamEmptySource(t *testing.T) {
	s := newLoopStream(newTestPlugin(t), nil)

	p := make([]byte, 8*bytesPerFrame)
	for i := range p {
		p[i] = 0xff
	}
	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	for _, v := range decodeFloats(p) {
		if v != 0 {
			t.Fatalf("empty source produced %v", v)
		}
	}
}

func TestHandleKey(t *testing.T) {
	params := host.NewParameters(brake.NewParams())
	params.Set(host.ParamBrakeRate, 0.5)

	if handleKey(params, ' ') != actionChanged || params.Get(host.ParamBrake) != 1 {
		t.Fatal("space should engage the brake")
	}
	if handleKey(params, ' ') != actionChanged || params.Get(host.ParamBrake) != 0 {
		t.Fatal("space should release the brake")
	}

	handleKey(params, '+')
	if math.Abs(params.Get(host.ParamBrakeRate)-0.51) > 1e-12 {
		t.Fatalf("rate = %v, want 0.51", params.Get(host.ParamBrakeRate))
	}
	handleKey(params, '-')
	handleKey(params, '-')
	if math.Abs(params.Get(host.ParamBrakeRate)-0.49) > 1e-12 {
		t.Fatalf("rate = %v, want 0.49", params.Get(host.ParamBrakeRate))
	}

	if handleKey(params, 'x') != actionNone {
		t.Fatal("unbound key should be ignored")
	}
	if handleKey(params, 'q') != actionQuit || handleKey(params, 0x03) != actionQuit {
		t.Fatal("q and Ctrl-C should quit")
	}
}

func TestHandleKeyClampsRate(t *testing.T) {
	params := host.NewParameters(brake.NewParams())

	for i := 0; i < 10; i++ {
		handleKey(params, '+')
	}
	if params.Get(host.ParamBrakeRate) != 1 {
		t.Fatalf("rate = %v, want clamped to 1", params.Get(host.ParamBrakeRate))
	}
}

func TestStatusLine(t *testing.T) {
	params := host.NewParameters(brake.NewParams())
	params.Set(host.ParamBrake, 1)
	params.Set(host.ParamBrakeRate, 0.3)

	line := statusLine(params)
	if !strings.Contains(line, "brake: enabled") || !strings.Contains(line, "brake rate: 0.30") {
		t.Fatalf("statusLine() = %q", line)
	}
}
