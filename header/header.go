// SPDX-License-Identifier: EPL-2.0

package header

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// Limits enforced while parsing.
const (
	MaxChannels      = 8
	MaxSampleRate    = 384000
	MaxBitsPerSample = 64
	MaxChunkSize     = 100 * 1024 * 1024
	MinHeaderSize    = 44

	minRIFFSize  = 36
	minFmtSize   = 16
	imaFmtSize   = 20
	chunkHdrSize = 8
	riffHdrSize  = 12
)

// ParseHeader locates the fmt and data chunks of the RIFF/WAVE file in data.
// It reports false for any malformed input and never reads outside data.
func ParseHeader(data []byte) (WaveFormat, bool) {
	w, err := Parse(data)
	if err != nil {
		return WaveFormat{}, false
	}

	return w, true
}

// Parse is ParseHeader with the failure cause attached. The returned error
// wraps one of the Err* values of this package.
func Parse(data []byte) (WaveFormat, error) {
	var w WaveFormat

	if data == nil || len(data) < MinHeaderSize {
		return w, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	if [4]byte(data[0:4]) != riff.RiffID || [4]byte(data[8:12]) != riff.WavFormatID {
		return w, ErrNotWavFile
	}

	size := uint64(len(data))

	riffSize := uint64(binary.LittleEndian.Uint32(data[4:8]))
	if riffSize < minRIFFSize || riffSize > size-chunkHdrSize {
		return w, fmt.Errorf("%w: %d for %d bytes", ErrInvalidRIFFSize, riffSize, size)
	}

	var foundFmt, foundData bool

	offset := uint64(riffHdrSize)
	for offset+chunkHdrSize <= size && (!foundFmt || !foundData) {
		id := [4]byte(data[offset : offset+4])
		chunkSize := uint64(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + chunkHdrSize

		isFmt := id == riff.FmtID
		isData := id == riff.DataFormatID

		if chunkSize > MaxChunkSize || chunkSize > size-body {
			if isFmt || isData {
				return WaveFormat{}, fmt.Errorf("%w: %q declares %d bytes at offset %d", ErrChunkTooLarge, id[:], chunkSize, offset)
			}
			// unknown chunks are skipped below without being read
			isFmt, isData = false, false
		}

		switch {
		case isFmt:
			if err := parseFmt(&w, data[body:body+chunkSize]); err != nil {
				return WaveFormat{}, err
			}
			foundFmt = true
		case isData:
			if body > math.MaxUint32 {
				return WaveFormat{}, fmt.Errorf("%w: data at %d", ErrOffsetOverflow, body)
			}
			w.DataOffset = uint32(body)
			w.DataSize = uint32(chunkSize)
			foundData = true
		}

		next := body + (chunkSize+1)&^1
		if next > math.MaxUint32 {
			return WaveFormat{}, fmt.Errorf("%w: next chunk at %d", ErrOffsetOverflow, next)
		}
		offset = next
	}

	if !foundFmt {
		return WaveFormat{}, ErrMissingFmt
	}

	if !foundData {
		return WaveFormat{}, ErrMissingData
	}

	return w, nil
}

func parseFmt(w *WaveFormat, chunk []byte) error {
	if len(chunk) < minFmtSize {
		return fmt.Errorf("%w: %d bytes", ErrFmtTooShort, len(chunk))
	}

	w.AudioFormat = Format(binary.LittleEndian.Uint16(chunk[0:2]))
	w.Channels = binary.LittleEndian.Uint16(chunk[2:4])
	w.SampleRate = binary.LittleEndian.Uint32(chunk[4:8])
	w.ByteRate = binary.LittleEndian.Uint32(chunk[8:12])
	w.BlockAlign = binary.LittleEndian.Uint16(chunk[12:14])
	w.BitsPerSample = binary.LittleEndian.Uint16(chunk[14:16])

	switch {
	case w.Channels == 0 || w.Channels > MaxChannels:
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, w.Channels)
	case w.SampleRate == 0 || w.SampleRate > MaxSampleRate:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, w.SampleRate)
	case w.BlockAlign == 0:
		return fmt.Errorf("%w: zero block align", ErrInvalidFormat)
	case w.BitsPerSample == 0 || w.BitsPerSample > MaxBitsPerSample:
		return fmt.Errorf("%w: %d bits per sample", ErrInvalidFormat, w.BitsPerSample)
	}

	if w.AudioFormat == FormatPCM {
		expectedAlign := (uint64(w.Channels)*uint64(w.BitsPerSample) + 7) / 8
		if uint64(w.BlockAlign) != expectedAlign {
			return fmt.Errorf("%w: got %d, want %d", ErrBlockAlignMismatch, w.BlockAlign, expectedAlign)
		}

		expectedRate := uint64(w.SampleRate) * uint64(w.BlockAlign)
		if uint64(w.ByteRate) != expectedRate {
			return fmt.Errorf("%w: got %d, want %d", ErrByteRateMismatch, w.ByteRate, expectedRate)
		}
	}

	w.SamplesPerBlock = 0
	if w.AudioFormat == FormatIMAADPCM && len(chunk) >= imaFmtSize {
		// cbSize must cover the samples-per-block word
		if binary.LittleEndian.Uint16(chunk[16:18]) >= 2 {
			w.SamplesPerBlock = binary.LittleEndian.Uint16(chunk[18:20])
		}
	}

	return nil
}
