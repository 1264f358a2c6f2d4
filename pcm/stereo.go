// SPDX-License-Identifier: EPL-2.0

package pcm

// DecodePCM8Stereo splits n interleaved unsigned 8-bit frames into left and right.
func DecodePCM8Stereo(in []byte, left, right []float32, n int) {
	pcm8Stereo(in, left, right, n, useBatch)
}

// DecodePCM16Stereo splits n interleaved signed 16-bit frames into left and right.
func DecodePCM16Stereo(in []byte, left, right []float32, n int) {
	pcm16Stereo(in, left, right, n, useBatch)
}

// DecodePCM24Stereo splits n interleaved packed 24-bit frames into left and right.
func DecodePCM24Stereo(in []byte, left, right []float32, n int) {
	pcm24Stereo(in, left, right, n, useBatch)
}

// DecodePCM32Stereo splits n interleaved signed 32-bit frames into left and right.
func DecodePCM32Stereo(in []byte, left, right []float32, n int) {
	pcm32Stereo(in, left, right, n, useBatch)
}

// DecodeFloat32Stereo splits n interleaved single precision frames into left and right.
func DecodeFloat32Stereo(in []byte, left, right []float32, n int) {
	float32Stereo(in, left, right, n, useBatch)
}

// DecodeFloat64Stereo splits n interleaved double precision frames into left and right.
func DecodeFloat64Stereo(in []byte, left, right []float32, n int) {
	float64Stereo(in, left, right, n, useBatch)
}

func pcm8Stereo(in []byte, left, right []float32, n int, batch bool) {
	const frame = 2 * BytesPCM8
	if !validStereo(in, left, right, n, BytesPCM8) {
		return
	}

	i := 0
	if batch {
		for ; i+width8 <= n; i += width8 {
			pcm8StereoBlock((*[width8 * frame]byte)(in[i*frame:]), (*[width8]float32)(left[i:]), (*[width8]float32)(right[i:]))
		}
	}

	for ; i < n; i++ {
		left[i] = u8(in[i*frame])
		right[i] = u8(in[i*frame+1])
	}
}

func pcm8StereoBlock(in *[width8 * 2 * BytesPCM8]byte, left, right *[width8]float32) {
	for j := range left {
		left[j] = u8(in[2*j])
		right[j] = u8(in[2*j+1])
	}
}

func pcm16Stereo(in []byte, left, right []float32, n int, batch bool) {
	const frame = 2 * BytesPCM16
	if !validStereo(in, left, right, n, BytesPCM16) {
		return
	}

	i := 0
	if batch {
		for ; i+width16 <= n; i += width16 {
			pcm16StereoBlock((*[width16 * frame]byte)(in[i*frame:]), (*[width16]float32)(left[i:]), (*[width16]float32)(right[i:]))
		}
	}

	for ; i < n; i++ {
		p := in[i*frame:]
		left[i] = i16(p)
		right[i] = i16(p[BytesPCM16:])
	}
}

func pcm16StereoBlock(in *[width16 * 2 * BytesPCM16]byte, left, right *[width16]float32) {
	for j := range left {
		p := in[j*4:]
		left[j] = i16(p)
		right[j] = i16(p[2:])
	}
}

func pcm24Stereo(in []byte, left, right []float32, n int, batch bool) {
	const frame = 2 * BytesPCM24
	if !validStereo(in, left, right, n, BytesPCM24) {
		return
	}

	i := 0
	if batch {
		for ; i+width24 <= n; i += width24 {
			pcm24StereoBlock((*[width24 * frame]byte)(in[i*frame:]), (*[width24]float32)(left[i:]), (*[width24]float32)(right[i:]))
		}
	}

	for ; i < n; i++ {
		p := in[i*frame:]
		left[i] = i24(p)
		right[i] = i24(p[BytesPCM24:])
	}
}

func pcm24StereoBlock(in *[width24 * 2 * BytesPCM24]byte, left, right *[width24]float32) {
	left[0], right[0] = i24(in[0:3]), i24(in[3:6])
	left[1], right[1] = i24(in[6:9]), i24(in[9:12])
	left[2], right[2] = i24(in[12:15]), i24(in[15:18])
	left[3], right[3] = i24(in[18:21]), i24(in[21:24])
}

func pcm32Stereo(in []byte, left, right []float32, n int, batch bool) {
	const frame = 2 * BytesPCM32
	if !validStereo(in, left, right, n, BytesPCM32) {
		return
	}

	i := 0
	if batch {
		for ; i+width32 <= n; i += width32 {
			pcm32StereoBlock((*[width32 * frame]byte)(in[i*frame:]), (*[width32]float32)(left[i:]), (*[width32]float32)(right[i:]))
		}
	}

	for ; i < n; i++ {
		p := in[i*frame:]
		left[i] = i32(p)
		right[i] = i32(p[BytesPCM32:])
	}
}

func pcm32StereoBlock(in *[width32 * 2 * BytesPCM32]byte, left, right *[width32]float32) {
	left[0], right[0] = i32(in[0:4]), i32(in[4:8])
	left[1], right[1] = i32(in[8:12]), i32(in[12:16])
	left[2], right[2] = i32(in[16:20]), i32(in[20:24])
	left[3], right[3] = i32(in[24:28]), i32(in[28:32])
}

func float32Stereo(in []byte, left, right []float32, n int, batch bool) {
	const frame = 2 * BytesFloat32
	if !validStereo(in, left, right, n, BytesFloat32) {
		return
	}

	i := 0
	if batch {
		for ; i+width32 <= n; i += width32 {
			float32StereoBlock((*[width32 * frame]byte)(in[i*frame:]), (*[width32]float32)(left[i:]), (*[width32]float32)(right[i:]))
		}
	}

	for ; i < n; i++ {
		p := in[i*frame:]
		left[i] = f32(p)
		right[i] = f32(p[BytesFloat32:])
	}
}

func float32StereoBlock(in *[width32 * 2 * BytesFloat32]byte, left, right *[width32]float32) {
	left[0], right[0] = f32(in[0:4]), f32(in[4:8])
	left[1], right[1] = f32(in[8:12]), f32(in[12:16])
	left[2], right[2] = f32(in[16:20]), f32(in[20:24])
	left[3], right[3] = f32(in[24:28]), f32(in[28:32])
}

func float64Stereo(in []byte, left, right []float32, n int, batch bool) {
	const frame = 2 * BytesFloat64
	if !validStereo(in, left, right, n, BytesFloat64) {
		return
	}

	i := 0
	if batch {
		for ; i+widthF64Pair <= n; i += widthF64Pair {
			float64StereoBlock((*[widthF64Pair * frame]byte)(in[i*frame:]), (*[widthF64Pair]float32)(left[i:]), (*[widthF64Pair]float32)(right[i:]))
		}
	}

	for ; i < n; i++ {
		p := in[i*frame:]
		left[i] = f64(p)
		right[i] = f64(p[BytesFloat64:])
	}
}

func float64StereoBlock(in *[widthF64Pair * 2 * BytesFloat64]byte, left, right *[widthF64Pair]float32) {
	left[0], right[0] = f64(in[0:8]), f64(in[8:16])
	left[1], right[1] = f64(in[16:24]), f64(in[24:32])
}
