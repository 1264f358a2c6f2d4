// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"fmt"

	"github.com/ik5/wavkit/g711"
	"github.com/ik5/wavkit/header"
	"github.com/ik5/wavkit/pcm"
)

// Kernel converts frame based payloads of one encoding.
type Kernel struct {
	Name string

	// FrameBytes is the size of one sample of one channel. A stereo frame
	// is twice as large.
	FrameBytes int

	Mono   func(in []byte, out []float32, n int)
	Stereo func(in []byte, left, right []float32, n int)
}

var (
	kernelPCM8    = Kernel{"pcm8", pcm.BytesPCM8, pcm.DecodePCM8Mono, pcm.DecodePCM8Stereo}
	kernelPCM16   = Kernel{"pcm16", pcm.BytesPCM16, pcm.DecodePCM16Mono, pcm.DecodePCM16Stereo}
	kernelPCM24   = Kernel{"pcm24", pcm.BytesPCM24, pcm.DecodePCM24Mono, pcm.DecodePCM24Stereo}
	kernelPCM32   = Kernel{"pcm32", pcm.BytesPCM32, pcm.DecodePCM32Mono, pcm.DecodePCM32Stereo}
	kernelFloat32 = Kernel{"float32", pcm.BytesFloat32, pcm.DecodeFloat32Mono, pcm.DecodeFloat32Stereo}
	kernelFloat64 = Kernel{"float64", pcm.BytesFloat64, pcm.DecodeFloat64Mono, pcm.DecodeFloat64Stereo}
	kernelALaw    = Kernel{"alaw", 1, g711.DecodeALawMono, g711.DecodeALawStereo}
	kernelMuLaw   = Kernel{"mulaw", 1, g711.DecodeMuLawMono, g711.DecodeMuLawStereo}
)

// SelectKernel returns the kernel for the encoding described by f.
//
// IMA ADPCM is block based and has no Kernel; Decode handles it through the
// adpcm package. It and every other unknown combination of format tag and
// bit depth yield ErrUnsupportedEncoding.
func SelectKernel(f header.WaveFormat) (Kernel, error) {
	switch f.AudioFormat {
	case header.FormatPCM:
		switch f.BitsPerSample {
		case 8:
			return kernelPCM8, nil
		case 16:
			return kernelPCM16, nil
		case 24:
			return kernelPCM24, nil
		case 32:
			return kernelPCM32, nil
		}
	case header.FormatIEEEFloat:
		switch f.BitsPerSample {
		case 32:
			return kernelFloat32, nil
		case 64:
			return kernelFloat64, nil
		}
	case header.FormatALaw:
		if f.BitsPerSample == 8 {
			return kernelALaw, nil
		}
	case header.FormatMuLaw:
		if f.BitsPerSample == 8 {
			return kernelMuLaw, nil
		}
	}

	return Kernel{}, fmt.Errorf("%w: %s with %d bits per sample", ErrUnsupportedEncoding, f.AudioFormat, f.BitsPerSample)
}
