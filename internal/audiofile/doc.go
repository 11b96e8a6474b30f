// Package audiofile loads audio files into stereo float64 buffers and writes
// rendered stereo back out as PCM WAV.
//
// Decoding supports WAV and AIFF (go-audio), MP3 (go-mp3) and Ogg Vorbis
// (oggvorbis). Mono input is duplicated to both channels; channels beyond
// the second are dropped.
package audiofile
