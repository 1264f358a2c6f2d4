// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming side of wavkit.
//
// This package contains:
//   - Source interface for decoded sample streams
//   - Decoder interface for container formats
//   - Registry for decoder lookup by container name
//   - ReadAll and Interleave helpers
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples writes interleaved frames: for stereo the left sample of a
// frame comes first. The returned count is in float32 values, not frames.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", &wav.Decoder{})
//	src, err := registry.Decode("wav", file)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process n samples from buf
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
