// Package brake provides a turntable/tape stop effect for stereo signals.
//
// While the brake is engaged the processor records the incoming audio into a
// ten second buffer and plays that recording back through a fractional read
// head whose speed decays toward zero on every sample. The result is the
// familiar pitch- and tempo-dropping "power off" sound. While disengaged the
// processor is a bit-exact passthrough and continuously discards any state
// from the previous braking episode, so every engagement starts a fresh
// recording.
//
// Types:
//   - Params: lock-free enable flag and decay rate, safe to write from any
//     goroutine while audio is being processed.
//   - RecordBuffer: fixed-capacity stereo recording with a write cursor that
//     never wraps and linear interpolated reads.
//   - Brake: the playback engine combining both.
//
// Brake is real-time safe after construction: processing performs no
// allocation, locking, or I/O. It is not safe to call SetSampleRate
// concurrently with processing.
package brake
