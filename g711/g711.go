// SPDX-License-Identifier: EPL-2.0

package g711

import "math"

// MaxFrames is the largest frame count a decoder accepts.
const MaxFrames = math.MaxInt32 / 16

const (
	widthMono   = 16
	widthStereo = 8
)

// Batching reports whether decoders use the block path. It is false only
// in builds with the purego tag.
func Batching() bool { return useBatch }

// DecodeALawMono decodes n A-law codes.
func DecodeALawMono(in []byte, out []float32, n int) {
	Init()
	decodeMono(&aLawTable, in, out, n, useBatch)
}

// DecodeALawStereo splits n interleaved A-law frames into left and right.
func DecodeALawStereo(in []byte, left, right []float32, n int) {
	Init()
	decodeStereo(&aLawTable, in, left, right, n, useBatch)
}

// DecodeMuLawMono decodes n mu-law codes.
func DecodeMuLawMono(in []byte, out []float32, n int) {
	Init()
	decodeMono(&muLawTable, in, out, n, useBatch)
}

// DecodeMuLawStereo splits n interleaved mu-law frames into left and right.
func DecodeMuLawStereo(in []byte, left, right []float32, n int) {
	Init()
	decodeStereo(&muLawTable, in, left, right, n, useBatch)
}

func decodeMono(table *[256]float32, in []byte, out []float32, n int, batch bool) {
	if in == nil || out == nil || n <= 0 || n > MaxFrames || len(in) < n || len(out) < n {
		return
	}

	i := 0
	if batch {
		for ; i+widthMono <= n; i += widthMono {
			monoBlock(table, (*[widthMono]byte)(in[i:]), (*[widthMono]float32)(out[i:]))
		}
	}

	for ; i < n; i++ {
		out[i] = table[in[i]]
	}
}

func monoBlock(table *[256]float32, in *[widthMono]byte, out *[widthMono]float32) {
	for j, c := range in {
		out[j] = table[c]
	}
}

func decodeStereo(table *[256]float32, in []byte, left, right []float32, n int, batch bool) {
	if in == nil || left == nil || right == nil || n <= 0 || n > MaxFrames {
		return
	}

	if len(in)/2 < n || len(left) < n || len(right) < n {
		return
	}

	i := 0
	if batch {
		for ; i+widthStereo <= n; i += widthStereo {
			stereoBlock(table, (*[2 * widthStereo]byte)(in[2*i:]), (*[widthStereo]float32)(left[i:]), (*[widthStereo]float32)(right[i:]))
		}
	}

	for ; i < n; i++ {
		left[i] = table[in[2*i]]
		right[i] = table[in[2*i+1]]
	}
}

func stereoBlock(table *[256]float32, in *[2 * widthStereo]byte, left, right *[widthStereo]float32) {
	for j := range left {
		left[j] = table[in[2*j]]
		right[j] = table[in[2*j+1]]
	}
}
