// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/adpcm"
	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/header"
)

// DefaultBatchFrames is the number of frames decoded per batch when
// Decoder.BatchFrames is not set.
const DefaultBatchFrames = 4096

// Decoder reads a WAVE stream and returns a Source over its samples.
type Decoder struct {
	// Logger receives debug events about parsed files. Nil disables logging.
	Logger *zerolog.Logger

	// BatchFrames caps the frames converted per kernel call. IMA ADPCM is
	// decoded in whole blocks, at least one per batch.
	BatchFrames int
}

// unit is the smallest independently decodable piece of a payload: one frame
// for frame based encodings, one block for IMA ADPCM.
type unit struct {
	bytes  int
	frames int
	decode func(in []byte, planes [][]float32, units int)
}

func kernelUnit(w header.WaveFormat, k wavkit.Kernel) unit {
	u := unit{bytes: int(w.BlockAlign), frames: 1}

	if w.Channels == 1 {
		u.decode = func(in []byte, planes [][]float32, n int) { k.Mono(in, planes[0], n) }
	} else {
		u.decode = func(in []byte, planes [][]float32, n int) { k.Stereo(in, planes[0], planes[1], n) }
	}

	return u
}

func imaUnit(w header.WaveFormat, spb int) unit {
	u := unit{bytes: int(w.BlockAlign), frames: spb}

	if w.Channels == 1 {
		u.decode = func(in []byte, planes [][]float32, n int) { adpcm.DecodeMono(in, planes[0], n, spb) }
	} else {
		u.decode = func(in []byte, planes [][]float32, n int) { adpcm.DecodeStereo(in, planes[0], planes[1], n, spb) }
	}

	return u
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	logger := zerolog.Nop()
	if d.Logger != nil {
		logger = *d.Logger
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	w, err := header.Parse(data)
	switch {
	case errors.Is(err, header.ErrNotWavFile), errors.Is(err, header.ErrShortHeader):
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	logger.Debug().
		Stringer("format", w.AudioFormat).
		Uint16("channels", w.Channels).
		Uint32("sample_rate", w.SampleRate).
		Uint16("bits_per_sample", w.BitsPerSample).
		Uint16("block_align", w.BlockAlign).
		Uint32("data_offset", w.DataOffset).
		Uint32("data_size", w.DataSize).
		Msg("parsed WAV header")

	if w.Channels > 2 {
		return nil, fmt.Errorf("%w: %w: %d", ErrUnsupportedWavLayout, wavkit.ErrUnsupportedChannels, w.Channels)
	}

	var (
		u    unit
		name string
	)

	if w.AudioFormat == header.FormatIMAADPCM {
		spb, err := wavkit.IMASamplesPerBlock(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedEncoding, err)
		}
		u, name = imaUnit(w, spb), "ima-adpcm"
	} else {
		k, err := wavkit.SelectKernel(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedEncoding, err)
		}
		if int(w.BlockAlign) != k.FrameBytes*int(w.Channels) {
			return nil, fmt.Errorf("%w: block align %d for %d channels of %s", ErrUnsupportedEncoding, w.BlockAlign, w.Channels, k.Name)
		}
		u, name = kernelUnit(w, k), k.Name
	}

	payload, err := w.Payload(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	batch := d.BatchFrames
	if batch <= 0 {
		batch = DefaultBatchFrames
	}
	batchUnits := max(batch/u.frames, 1)

	units := len(payload) / u.bytes
	if rest := len(payload) % u.bytes; rest != 0 {
		logger.Warn().Int("bytes", rest).Str("kernel", name).Msg("ignoring trailing partial frame")
	}

	logger.Debug().
		Str("kernel", name).
		Int("units", units).
		Int("frames_per_unit", u.frames).
		Int("batch_units", batchUnits).
		Msg("selected kernel")

	s := &wavSource{
		unit:       u,
		format:     w,
		payload:    payload[:units*u.bytes],
		channels:   int(w.Channels),
		batchUnits: batchUnits,
		planes:     make([][]float32, w.Channels),
	}
	for ch := range s.planes {
		s.planes[ch] = make([]float32, batchUnits*u.frames)
	}

	return s, nil
}

type wavSource struct {
	unit
	format     header.WaveFormat
	payload    []byte
	channels   int
	batchUnits int

	planes [][]float32
	next   int // next frame to hand out from planes
	avail  int // frames decoded into planes
	closed bool
}

func (s *wavSource) SampleRate() int { return int(s.format.SampleRate) }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return len(s.planes[0]) * s.channels }

// Format returns the parsed header of the stream.
func (s *wavSource) Format() header.WaveFormat { return s.format }

func (s *wavSource) Close() error {
	s.closed = true
	s.payload = nil
	return nil
}

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrSourceClosed
	}

	if len(dst)%s.channels != 0 {
		return 0, fmt.Errorf("%w: %d values for %d channels", audio.ErrInvalidDstSize, len(dst), s.channels)
	}

	want := len(dst) / s.channels
	done := 0

	for done < want {
		if s.next == s.avail && !s.fill() {
			break
		}

		n := min(want-done, s.avail-s.next)
		if s.channels == 1 {
			copy(dst[done:], s.planes[0][s.next:s.next+n])
		} else {
			audio.Interleave(dst[2*done:], s.planes[0][s.next:s.next+n], s.planes[1][s.next:s.next+n])
		}

		done += n
		s.next += n
	}

	if done < want {
		return done * s.channels, io.EOF
	}

	return done * s.channels, nil
}

// fill decodes the next batch into planes. It reports false at the end of
// the payload.
func (s *wavSource) fill() bool {
	units := min(s.batchUnits, len(s.payload)/s.unit.bytes)
	if units == 0 {
		return false
	}

	size := units * s.unit.bytes
	s.decode(s.payload[:size], s.planes, units)
	s.payload = s.payload[size:]

	s.next, s.avail = 0, units*s.unit.frames
	return true
}
