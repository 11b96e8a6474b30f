// Package host wraps the brake engine in the shape plugin hosts expect:
// static plugin info, indexed parameters with display text, sample-rate
// negotiation and per-block processing of float64, float32 or interleaved
// stereo buffers.
package host
