// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
)

// Waveform produces the value of channel at frame index sample.
type Waveform func(sample int, channel int) float64

// Sine returns a waveform of a sine at frequency Hz sampled at sampleRate.
func Sine(sampleRate int, frequency, amplitude float64) Waveform {
	return func(sample int, channel int) float64 {
		t := float64(sample) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*frequency*t+float64(channel))
	}
}

// Generate renders frames frames of w into interleaved values.
func Generate(w Waveform, channels, frames int) []float64 {
	out := make([]float64, frames*channels)
	for f := range frames {
		for ch := range channels {
			out[f*channels+ch] = w(f, ch)
		}
	}

	return out
}

// RandomBytes returns n pseudo random bytes. The same seed always yields the
// same bytes.
func RandomBytes(n int, seed uint64) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Uint32())
	}

	return b
}

// PCM8 encodes unsigned 8-bit samples.
func PCM8(samples []uint8) []byte {
	out := make([]byte, len(samples))
	copy(out, samples)
	return out
}

// PCM16 encodes little-endian signed 16-bit samples.
func PCM16(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}

	return out
}

// PCM24 encodes the low 24 bits of each sample, little-endian.
func PCM24(samples []int32) []byte {
	out := make([]byte, len(samples)*3)
	for i, s := range samples {
		out[i*3] = byte(s)
		out[i*3+1] = byte(s >> 8)
		out[i*3+2] = byte(s >> 16)
	}

	return out
}

// PCM32 encodes little-endian signed 32-bit samples.
func PCM32(samples []int32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(s))
	}

	return out
}

// Float32 encodes little-endian IEEE 754 single precision samples.
func Float32(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}

	return out
}

// Float64 encodes little-endian IEEE 754 double precision samples.
func Float64(samples []float64) []byte {
	out := make([]byte, len(samples)*8)
	for i, s := range samples {
		binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(s))
	}

	return out
}

// ToInt16 quantizes values in [-1, 1] to 16-bit samples.
func ToInt16(values []float64) []int16 {
	out := make([]int16, len(values))
	for i, v := range values {
		out[i] = int16(math.Max(-32768, math.Min(32767, math.Round(v*32768))))
	}

	return out
}

// Sentinel returns a float32 slice of n elements set to a value no decoder
// produces, used to detect writes to buffers that must stay untouched.
func Sentinel(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = SentinelValue
	}

	return out
}

// SentinelValue is the fill value used by Sentinel.
const SentinelValue float32 = 42.5
