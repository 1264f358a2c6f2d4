// SPDX-License-Identifier: EPL-2.0

// Package wav provides a streaming WAV decoder.
//
// The decoder accepts every file the wavkit package decodes: integer PCM of
// 8, 16, 24 and 32 bits, IEEE float of 32 and 64 bits, A-law, mu-law and
// IMA ADPCM, in mono or stereo.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, source.BufSize())
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides interleaved float32
// samples in the range [-1.0, 1.0].
//
// # Batching
//
// The payload is converted in batches of at most BatchFrames frames
// (DefaultBatchFrames when zero). IMA ADPCM is converted in whole blocks, at
// least one block per batch. The batch size changes memory use only; the
// samples are the same as a whole-file wavkit.Decode.
//
// # Logging
//
// Set Logger to receive debug events with the parsed header and the selected
// kernel, and a warning when the data chunk ends with a partial frame.
//
// # Error Handling
//
// Decode errors wrap one of:
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedWavLayout: the chunks are malformed or the channel count is unsupported
//   - ErrUnsupportedEncoding: no kernel exists for the format tag and bit depth
//
// The underlying header or wavkit error is wrapped too, so errors.Is works
// with either.
package wav
