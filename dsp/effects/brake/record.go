package brake

import (
	"math"

	"github.com/cwbudde/algo-brake/dsp/interp"
)

// RecordSeconds is the recording runway of a braking episode.
const RecordSeconds = 10

// Frame is one stereo sample pair.
type Frame struct {
	Left, Right float64
}

// RecordBuffer is a fixed-capacity stereo recording.
//
// The write cursor only moves forward. Once it reaches the capacity further
// appends are ignored until Reset or Resize; there is no wraparound.
type RecordBuffer struct {
	frames []Frame
	write  int
}

// CapacityFor returns the number of frames recorded per episode at
// sampleRate. Fractional rates are truncated; non-positive or non-finite
// rates give an empty buffer.
func CapacityFor(sampleRate float64) int {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate < 1 {
		return 0
	}
	return int(sampleRate) * RecordSeconds
}

// NewRecordBuffer returns a buffer sized for sampleRate.
func NewRecordBuffer(sampleRate float64) *RecordBuffer {
	b := &RecordBuffer{}
	b.Resize(sampleRate)
	return b
}

// Resize discards any recording and sizes the buffer for sampleRate. All
// frames read as silence afterwards and the write cursor is 0.
//
// Resize allocates when the capacity grows and must not run concurrently
// with Append or ReadInterpolated.
func (b *RecordBuffer) Resize(sampleRate float64) {
	n := CapacityFor(sampleRate)
	if cap(b.frames) >= n {
		b.frames = b.frames[:n]
		clear(b.frames)
	} else {
		b.frames = make([]Frame, n)
	}
	b.write = 0
}

// Append records one frame. It reports false when the buffer is full and the
// frame was dropped.
func (b *RecordBuffer) Append(left, right float64) bool {
	if b.write >= len(b.frames) {
		return false
	}
	b.frames[b.write] = Frame{Left: left, Right: right}
	b.write++
	return true
}

// ReadInterpolated returns the linearly interpolated frame at the fractional
// position pos. Both neighbours floor(pos) and floor(pos)+1 must lie below the
// write cursor; positions outside the recorded range read as silence.
func (b *RecordBuffer) ReadInterpolated(pos float64) (float64, float64) {
	if !(pos >= 0) || pos >= float64(b.write-1) {
		return 0, 0
	}
	i, frac := interp.Split(pos)
	if i+1 >= b.write {
		return 0, 0
	}
	cur, next := b.frames[i], b.frames[i+1]
	return interp.Linear2(frac, cur.Left, next.Left), interp.Linear2(frac, cur.Right, next.Right)
}

// Reset rewinds the write cursor without clearing stored frames. Frames at or
// beyond the cursor are never returned by ReadInterpolated.
func (b *RecordBuffer) Reset() {
	b.write = 0
}

// Len returns the capacity in frames.
func (b *RecordBuffer) Len() int { return len(b.frames) }

// WriteCursor returns the index of the next frame to be recorded.
func (b *RecordBuffer) WriteCursor() int { return b.write }

// Remaining returns how many more frames can be recorded.
func (b *RecordBuffer) Remaining() int { return len(b.frames) - b.write }

// Full reports whether recording capacity is exhausted.
func (b *RecordBuffer) Full() bool { return b.write >= len(b.frames) }
