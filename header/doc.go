// SPDX-License-Identifier: EPL-2.0

// Package header parses the header of RIFF/WAVE files held in memory.
//
// Parse walks the chunks of the container, validates the fmt chunk and
// records where the data chunk starts and how long it is. Chunks other than
// "fmt " and "data" are skipped without being interpreted. All offset
// arithmetic is bounds and overflow checked, so any input, however
// malformed, yields either a WaveFormat or an error:
//
//	w, err := header.Parse(buf)
//	if err != nil {
//	    // errors.Is(err, header.ErrNotWavFile), ...
//	}
//	payload, err := w.Payload(buf)
//
// ParseHeader exposes the same walk with a plain success flag for callers
// that only need to know whether the buffer is usable.
//
// # Limits
//
//   - 1 to 8 channels
//   - 1 to 384000 Hz
//   - 1 to 64 bits per sample
//   - chunks up to 100 MiB
//   - at least 44 bytes of input
//
// For integer PCM the block align and byte rate must agree with the channel
// count, bit depth and sample rate; a mismatch fails the parse instead of
// being corrected.
package header
