// Package interp provides interpolation primitives used by variable-rate
// playback blocks.
//
//   - [Split]:   separate a fractional read position into index and fraction
//   - [Linear2]: 2-point linear interpolation
package interp
