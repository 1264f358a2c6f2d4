// SPDX-License-Identifier: EPL-2.0

package header

import (
	"fmt"
	"time"
)

// Format is the audio format tag stored in the fmt chunk.
type Format uint16

// Format tags recognized by the parser. The values are part of the WAVE
// file format and must not change.
const (
	FormatPCM       Format = 1
	FormatADPCM     Format = 2 // Microsoft ADPCM, recognized but not decoded
	FormatIEEEFloat Format = 3
	FormatALaw      Format = 6
	FormatMuLaw     Format = 7
	FormatIMAADPCM  Format = 17
)

func (f Format) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatADPCM:
		return "ADPCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMuLaw:
		return "mu-law"
	case FormatIMAADPCM:
		return "IMA ADPCM"
	default:
		return fmt.Sprintf("format(%d)", uint16(f))
	}
}

// WaveFormat describes a parsed WAVE file: the fields of its fmt chunk and
// the location of its data chunk inside the parsed buffer.
//
// A WaveFormat is a plain value. Each call to Parse builds a new one.
type WaveFormat struct {
	AudioFormat   Format
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// SamplesPerBlock comes from the IMA ADPCM fmt extension.
	// It is zero for other formats or when the extension is missing.
	SamplesPerBlock uint16

	DataOffset uint32
	DataSize   uint32
}

// Frames returns the number of whole frames held by the data chunk.
// For IMA ADPCM this counts samples per channel across all whole blocks,
// and it is zero when SamplesPerBlock is unknown.
func (w WaveFormat) Frames() int {
	if w.BlockAlign == 0 {
		return 0
	}

	blocks := int(w.DataSize / uint32(w.BlockAlign))
	if w.AudioFormat == FormatIMAADPCM {
		return blocks * int(w.SamplesPerBlock)
	}

	return blocks
}

// Duration returns the playing time of the data chunk.
func (w WaveFormat) Duration() time.Duration {
	if w.SampleRate == 0 {
		return 0
	}

	return time.Duration(w.Frames()) * time.Second / time.Duration(w.SampleRate)
}

// Payload returns the data chunk bytes of data, the buffer w was parsed from.
//
// A data chunk that claims more bytes than the buffer holds is clipped; the
// clipped slice is returned together with ErrTruncatedPayload.
func (w WaveFormat) Payload(data []byte) ([]byte, error) {
	start := uint64(w.DataOffset)
	end := start + uint64(w.DataSize)
	size := uint64(len(data))

	if start > size {
		return nil, fmt.Errorf("%w: data offset %d beyond %d bytes", ErrTruncatedPayload, start, size)
	}

	if end > size {
		return data[start:], fmt.Errorf("%w: %d of %d bytes present", ErrTruncatedPayload, size-start, w.DataSize)
	}

	return data[start:end], nil
}
