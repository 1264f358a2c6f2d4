// SPDX-License-Identifier: EPL-2.0

package pcm

// Block widths, in frames.
const (
	width8       = 16
	width16      = 8
	width24      = 4
	width32      = 4
	widthF64Mono = 4
	widthF64Pair = 2
)

// DecodePCM8Mono decodes n unsigned 8-bit samples.
func DecodePCM8Mono(in []byte, out []float32, n int) { pcm8Mono(in, out, n, useBatch) }

// DecodePCM16Mono decodes n signed 16-bit samples.
func DecodePCM16Mono(in []byte, out []float32, n int) { pcm16Mono(in, out, n, useBatch) }

// DecodePCM24Mono decodes n packed signed 24-bit samples.
func DecodePCM24Mono(in []byte, out []float32, n int) { pcm24Mono(in, out, n, useBatch) }

// DecodePCM32Mono decodes n signed 32-bit samples.
func DecodePCM32Mono(in []byte, out []float32, n int) { pcm32Mono(in, out, n, useBatch) }

// DecodeFloat32Mono decodes n single precision samples.
func DecodeFloat32Mono(in []byte, out []float32, n int) { float32Mono(in, out, n, useBatch) }

// DecodeFloat64Mono decodes n double precision samples.
func DecodeFloat64Mono(in []byte, out []float32, n int) { float64Mono(in, out, n, useBatch) }

func pcm8Mono(in []byte, out []float32, n int, batch bool) {
	if !validMono(in, out, n, BytesPCM8) {
		return
	}

	i := 0
	if batch {
		for ; i+width8 <= n; i += width8 {
			pcm8MonoBlock((*[width8]byte)(in[i:]), (*[width8]float32)(out[i:]))
		}
	}

	for ; i < n; i++ {
		out[i] = u8(in[i])
	}
}

func pcm8MonoBlock(in *[width8]byte, out *[width8]float32) {
	for j := range out {
		out[j] = u8(in[j])
	}
}

func pcm16Mono(in []byte, out []float32, n int, batch bool) {
	if !validMono(in, out, n, BytesPCM16) {
		return
	}

	i := 0
	if batch {
		for ; i+width16 <= n; i += width16 {
			pcm16MonoBlock((*[width16 * BytesPCM16]byte)(in[i*BytesPCM16:]), (*[width16]float32)(out[i:]))
		}
	}

	for ; i < n; i++ {
		out[i] = i16(in[i*BytesPCM16:])
	}
}

func pcm16MonoBlock(in *[width16 * BytesPCM16]byte, out *[width16]float32) {
	for j := range out {
		out[j] = i16(in[j*BytesPCM16:])
	}
}

func pcm24Mono(in []byte, out []float32, n int, batch bool) {
	if !validMono(in, out, n, BytesPCM24) {
		return
	}

	i := 0
	if batch {
		for ; i+width24 <= n; i += width24 {
			pcm24MonoBlock((*[width24 * BytesPCM24]byte)(in[i*BytesPCM24:]), (*[width24]float32)(out[i:]))
		}
	}

	for ; i < n; i++ {
		out[i] = i24(in[i*BytesPCM24:])
	}
}

func pcm24MonoBlock(in *[width24 * BytesPCM24]byte, out *[width24]float32) {
	out[0] = i24(in[0:3])
	out[1] = i24(in[3:6])
	out[2] = i24(in[6:9])
	out[3] = i24(in[9:12])
}

func pcm32Mono(in []byte, out []float32, n int, batch bool) {
	if !validMono(in, out, n, BytesPCM32) {
		return
	}

	i := 0
	if batch {
		for ; i+width32 <= n; i += width32 {
			pcm32MonoBlock((*[width32 * BytesPCM32]byte)(in[i*BytesPCM32:]), (*[width32]float32)(out[i:]))
		}
	}

	for ; i < n; i++ {
		out[i] = i32(in[i*BytesPCM32:])
	}
}

func pcm32MonoBlock(in *[width32 * BytesPCM32]byte, out *[width32]float32) {
	out[0] = i32(in[0:4])
	out[1] = i32(in[4:8])
	out[2] = i32(in[8:12])
	out[3] = i32(in[12:16])
}

func float32Mono(in []byte, out []float32, n int, batch bool) {
	if !validMono(in, out, n, BytesFloat32) {
		return
	}

	i := 0
	if batch {
		for ; i+width32 <= n; i += width32 {
			float32MonoBlock((*[width32 * BytesFloat32]byte)(in[i*BytesFloat32:]), (*[width32]float32)(out[i:]))
		}
	}

	for ; i < n; i++ {
		out[i] = f32(in[i*BytesFloat32:])
	}
}

func float32MonoBlock(in *[width32 * BytesFloat32]byte, out *[width32]float32) {
	out[0] = f32(in[0:4])
	out[1] = f32(in[4:8])
	out[2] = f32(in[8:12])
	out[3] = f32(in[12:16])
}

func float64Mono(in []byte, out []float32, n int, batch bool) {
	if !validMono(in, out, n, BytesFloat64) {
		return
	}

	i := 0
	if batch {
		for ; i+widthF64Mono <= n; i += widthF64Mono {
			float64MonoBlock((*[widthF64Mono * BytesFloat64]byte)(in[i*BytesFloat64:]), (*[widthF64Mono]float32)(out[i:]))
		}
	}

	for ; i < n; i++ {
		out[i] = f64(in[i*BytesFloat64:])
	}
}

func float64MonoBlock(in *[widthF64Mono * BytesFloat64]byte, out *[widthF64Mono]float32) {
	out[0] = f64(in[0:8])
	out[1] = f64(in[8:16])
	out[2] = f64(in[16:24])
	out[3] = f64(in[24:32])
}
