// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Fmt holds the raw fields of a fmt chunk. Nothing is validated, so tests
// can describe broken files as easily as good ones.
type Fmt struct {
	Format     uint16
	Channels   uint16
	SampleRate uint32
	ByteRate   uint32
	BlockAlign uint16
	Bits       uint16
	// Extra is appended after the 16 standard bytes (cbSize and extension).
	Extra []byte
}

// PCMFmt returns a consistent fmt chunk for integer PCM.
func PCMFmt(channels, sampleRate, bits int) Fmt {
	return FmtFor(1, channels, sampleRate, bits)
}

// FmtFor returns a fmt chunk for format with block align and byte rate
// derived from the channel count and bit depth.
func FmtFor(format, channels, sampleRate, bits int) Fmt {
	blockAlign := (channels*bits + 7) / 8

	return Fmt{
		Format:     uint16(format),
		Channels:   uint16(channels),
		SampleRate: uint32(sampleRate),
		ByteRate:   uint32(sampleRate * blockAlign),
		BlockAlign: uint16(blockAlign),
		Bits:       uint16(bits),
	}
}

// IMAFmt returns a fmt chunk for IMA ADPCM carrying samplesPerBlock in its
// extension.
func IMAFmt(channels, sampleRate, blockAlign, samplesPerBlock int) Fmt {
	extra := make([]byte, 4)
	binary.LittleEndian.PutUint16(extra[0:2], 2)
	binary.LittleEndian.PutUint16(extra[2:4], uint16(samplesPerBlock))

	return Fmt{
		Format:     17,
		Channels:   uint16(channels),
		SampleRate: uint32(sampleRate),
		ByteRate:   uint32(sampleRate * blockAlign / samplesPerBlock),
		BlockAlign: uint16(blockAlign),
		Bits:       4,
		Extra:      extra,
	}
}

// Bytes encodes the chunk payload (without the chunk header).
func (f Fmt) Bytes() []byte {
	b := make([]byte, 16, 16+len(f.Extra))
	binary.LittleEndian.PutUint16(b[0:2], f.Format)
	binary.LittleEndian.PutUint16(b[2:4], f.Channels)
	binary.LittleEndian.PutUint32(b[4:8], f.SampleRate)
	binary.LittleEndian.PutUint32(b[8:12], f.ByteRate)
	binary.LittleEndian.PutUint16(b[12:14], f.BlockAlign)
	binary.LittleEndian.PutUint16(b[14:16], f.Bits)

	return append(b, f.Extra...)
}

// Chunk is a RIFF chunk. Size overrides the declared size when non-nil,
// which lets tests lie about chunk lengths.
type Chunk struct {
	ID   string
	Data []byte
	Size *uint32
}

// FmtChunk wraps f in a "fmt " chunk.
func FmtChunk(f Fmt) Chunk { return Chunk{ID: "fmt ", Data: f.Bytes()} }

// DataChunk wraps payload in a "data" chunk.
func DataChunk(payload []byte) Chunk { return Chunk{ID: "data", Data: payload} }

// Sized returns a copy of c that declares size instead of len(c.Data).
func (c Chunk) Sized(size uint32) Chunk {
	c.Size = &size
	return c
}

// Bytes encodes the chunk with its header and padding byte.
func (c Chunk) Bytes() []byte {
	if len(c.ID) != 4 {
		panic(fmt.Sprintf("audiotest: chunk id %q is not 4 bytes", c.ID))
	}

	size := uint32(len(c.Data))
	if c.Size != nil {
		size = *c.Size
	}

	b := make([]byte, 8, 8+len(c.Data)+1)
	copy(b[0:4], c.ID)
	binary.LittleEndian.PutUint32(b[4:8], size)
	b = append(b, c.Data...)
	if len(c.Data)%2 == 1 {
		b = append(b, 0)
	}

	return b
}

// BuildWAV assembles a RIFF/WAVE file from chunks, with a RIFF size field
// that matches the assembled length.
func BuildWAV(chunks ...Chunk) []byte {
	body := []byte("WAVE")
	for _, c := range chunks {
		body = append(body, c.Bytes()...)
	}

	return BuildRIFF(uint32(len(body)), body)
}

// BuildRIFF prefixes body (which must start with the form type) with a RIFF
// header declaring riffSize.
func BuildRIFF(riffSize uint32, body []byte) []byte {
	out := make([]byte, 8, 8+len(body))
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], riffSize)

	return append(out, body...)
}

// WAV returns a canonical 44-byte-header file holding payload.
func WAV(f Fmt, payload []byte) []byte {
	return BuildWAV(FmtChunk(f), DataChunk(payload))
}

// WriteWAV writes a canonical WAV file holding payload to w.
func WriteWAV(w io.Writer, f Fmt, payload []byte) error {
	if _, err := w.Write(WAV(f, payload)); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return WriteWAV(w, PCMFmt(1, sampleRate, 16), PCM16(samples))
}
