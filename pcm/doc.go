// SPDX-License-Identifier: EPL-2.0

// Package pcm converts linear PCM and IEEE float sample payloads into
// normalized float32 samples.
//
// Every decoder takes the raw little-endian payload, a frame count n and
// caller owned output buffers of at least n elements:
//
//	pcm.DecodePCM16Mono(payload, out, n)
//	pcm.DecodePCM24Stereo(payload, left, right, n)
//
// Stereo decoders split the interleaved input into left and right buffers.
//
// # Scaling
//
//   - unsigned 8-bit:  (s - 128) / 128
//   - signed 16-bit:   s / 32768
//   - signed 24-bit:   s / 8388608
//   - signed 32-bit:   s / 2147483648
//   - float32/float64: NaN becomes 0, everything else is clamped to [-1, 1]
//
// Float64 input is clamped in double precision and then narrowed.
//
// # Invalid input
//
// Decoders have no error result. A nil buffer, n <= 0, n > MaxFrames or
// buffers too short for n frames make the call return without writing
// anything.
//
// # Batching
//
// Each decoder converts fixed-size blocks of frames (16 for 8-bit input,
// 8 for 16-bit, 4 for 24/32-bit and float32, 4 or 2 for float64) and
// finishes the remainder one frame at a time. Both paths share the same
// per-sample conversion, so results are identical whichever path handles a
// frame. The block path is on by default and is disabled with the purego
// build tag.
package pcm
