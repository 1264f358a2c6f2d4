// SPDX-License-Identifier: EPL-2.0

// Package adpcm decodes IMA ADPCM blocks into normalized float32 samples.
//
// Each block starts with a header per channel (a little-endian int16
// predictor, a step index byte and one reserved byte) followed by packed
// 4-bit codes. A mono block carries samplesPerBlock/2 code bytes, low nibble
// first. A stereo block carries samplesPerBlock code bytes where the low
// nibble belongs to the left channel and the high nibble to the right
// channel at the same sample index.
//
// Decoder state is reset from every block header, so blocks are independent
// and nothing is carried between calls. Unusable arguments make a call
// return without writing any output.
package adpcm
