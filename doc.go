// SPDX-License-Identifier: EPL-2.0

// Package wavkit decodes RIFF/WAVE files into normalized float32 samples.
//
// Decoding happens in two steps. The header package walks the RIFF chunks
// and validates the fmt chunk; a kernel then converts the data chunk into
// one float32 slice per channel, every sample in [-1, 1].
//
// # Supported Encodings
//
//   - PCM, 8-bit unsigned and 16/24/32-bit signed, via pcm
//   - IEEE float, 32 and 64-bit, via pcm
//   - G.711 A-law and mu-law via g711
//   - IMA ADPCM via adpcm
//
// Files with one or two channels are decoded. There is no down-mixing,
// resampling or compressed format support other than IMA ADPCM.
//
// # Quick Start
//
//	data, _ := os.ReadFile("audio.wav")
//	clip, err := wavkit.Decode(data)
//	if err != nil {
//	    return err
//	}
//	left := clip.Channels[0]
//
// # Kernels
//
// The kernels in pcm, g711 and adpcm can be called directly on raw payloads.
// They never allocate and have no error result: invalid arguments leave the
// output untouched. SelectKernel picks the frame based kernel matching a
// parsed header.
//
// # Streaming
//
// The formats/wav package wraps the same kernels in an audio.Source that
// decodes a bounded number of frames per read.
package wavkit
