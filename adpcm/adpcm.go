// SPDX-License-Identifier: EPL-2.0

package adpcm

import "math"

// MaxSamples is the largest number of samples per channel a single call
// decodes.
const MaxSamples = math.MaxInt32 / 16

const scale = 1.0 / 32768

// MonoBlockSize returns the size in bytes of a mono block, or 0 when
// samplesPerBlock is not a positive even number.
func MonoBlockSize(samplesPerBlock int) int {
	if samplesPerBlock <= 0 || samplesPerBlock%2 != 0 || samplesPerBlock > MaxSamples {
		return 0
	}

	return HeaderSize + samplesPerBlock/2
}

// StereoBlockSize returns the size in bytes of a stereo block, or 0 when
// samplesPerBlock is not positive.
func StereoBlockSize(samplesPerBlock int) int {
	if samplesPerBlock <= 0 || samplesPerBlock > MaxSamples {
		return 0
	}

	return 2*HeaderSize + samplesPerBlock
}

// SamplesPerBlock derives the samples per block of each channel from a
// block alignment. It returns 0 when the alignment cannot hold a block.
func SamplesPerBlock(channels, blockAlign int) int {
	switch channels {
	case 1:
		if blockAlign <= HeaderSize {
			return 0
		}
		return (blockAlign - HeaderSize) * 2
	case 2:
		if blockAlign <= 2*HeaderSize {
			return 0
		}
		return blockAlign - 2*HeaderSize
	}

	return 0
}

// DecodeMono decodes blocks mono blocks into out, which must hold
// blocks*samplesPerBlock samples.
func DecodeMono(in []byte, out []float32, blocks, samplesPerBlock int) {
	size := MonoBlockSize(samplesPerBlock)
	if in == nil || out == nil || blocks <= 0 || size == 0 {
		return
	}

	if blocks > MaxSamples/samplesPerBlock || len(in)/size < blocks || len(out)/samplesPerBlock < blocks {
		return
	}

	var s State
	for b := range blocks {
		block := in[b*size : (b+1)*size]
		dst := out[b*samplesPerBlock : (b+1)*samplesPerBlock]

		s.Reset(block)
		for i, c := range block[HeaderSize:] {
			dst[2*i] = float32(s.Next(c&0x0f)) * scale
			dst[2*i+1] = float32(s.Next(c>>4)) * scale
		}
	}
}

// DecodeStereo decodes blocks stereo blocks into left and right, which must
// each hold blocks*samplesPerBlock samples.
func DecodeStereo(in []byte, left, right []float32, blocks, samplesPerBlock int) {
	size := StereoBlockSize(samplesPerBlock)
	if in == nil || left == nil || right == nil || blocks <= 0 || size == 0 {
		return
	}

	if blocks > MaxSamples/samplesPerBlock || len(in)/size < blocks {
		return
	}

	if len(left)/samplesPerBlock < blocks || len(right)/samplesPerBlock < blocks {
		return
	}

	var l, r State
	for b := range blocks {
		block := in[b*size : (b+1)*size]
		dl := left[b*samplesPerBlock : (b+1)*samplesPerBlock]
		dr := right[b*samplesPerBlock : (b+1)*samplesPerBlock]

		l.Reset(block)
		r.Reset(block[HeaderSize:])
		for i, c := range block[2*HeaderSize:] {
			dl[i] = float32(l.Next(c&0x0f)) * scale
			dr[i] = float32(r.Next(c>>4)) * scale
		}
	}
}
