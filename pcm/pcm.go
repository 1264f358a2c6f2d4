// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"math"

	"github.com/go-audio/audio"

	"github.com/ik5/wavkit/utils"
)

// MaxFrames is the largest frame count a decoder accepts.
const MaxFrames = math.MaxInt32 / 16

// Bytes per sample of each input encoding.
const (
	BytesPCM8    = 1
	BytesPCM16   = 2
	BytesPCM24   = 3
	BytesPCM32   = 4
	BytesFloat32 = 4
	BytesFloat64 = 8
)

const (
	biasU8   = 128
	scaleU8  = 1.0 / 128
	scaleI16 = 1.0 / 32768
	scaleI24 = 1.0 / 8388608
	scaleI32 = 1.0 / 2147483648
)

// Batching reports whether decoders use the block path. It is false only
// in builds with the purego tag.
func Batching() bool { return useBatch }

func validMono(in []byte, out []float32, n, sampleBytes int) bool {
	if in == nil || out == nil || n <= 0 || n > MaxFrames {
		return false
	}

	return len(in)/sampleBytes >= n && len(out) >= n
}

func validStereo(in []byte, left, right []float32, n, sampleBytes int) bool {
	if in == nil || left == nil || right == nil || n <= 0 || n > MaxFrames {
		return false
	}

	return len(in)/(2*sampleBytes) >= n && len(left) >= n && len(right) >= n
}

func u8(b byte) float32 {
	return (float32(b) - biasU8) * scaleU8
}

func i16(b []byte) float32 {
	return float32(int16(binary.LittleEndian.Uint16(b))) * scaleI16
}

func i24(b []byte) float32 {
	return float32(audio.Int24LETo32(b[:3])) * scaleI24
}

func i32(b []byte) float32 {
	return float32(int32(binary.LittleEndian.Uint32(b))) * scaleI32
}

func f32(b []byte) float32 {
	return utils.ClampUnit32(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

func f64(b []byte) float32 {
	return float32(utils.ClampUnit64(math.Float64frombits(binary.LittleEndian.Uint64(b))))
}
