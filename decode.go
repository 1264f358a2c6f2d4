// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"fmt"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavkit/adpcm"
	"github.com/ik5/wavkit/header"
)

// Clip is a decoded WAVE file held in memory.
type Clip struct {
	Format header.WaveFormat

	// Channels holds one slice per channel, all of the same length.
	Channels [][]float32
}

// Frames returns the number of decoded frames.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}

	return len(c.Channels[0])
}

// Duration returns the playing time of the decoded frames.
func (c *Clip) Duration() time.Duration {
	if c.Format.SampleRate == 0 {
		return 0
	}

	return time.Duration(c.Frames()) * time.Second / time.Duration(c.Format.SampleRate)
}

// Float32Buffer returns the clip as an interleaved go-audio buffer.
func (c *Clip) Float32Buffer() *goaudio.Float32Buffer {
	channels := len(c.Channels)
	frames := c.Frames()

	data := make([]float32, frames*channels)
	for ch, samples := range c.Channels {
		for i, s := range samples {
			data[i*channels+ch] = s
		}
	}

	return &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  int(c.Format.SampleRate),
		},
		Data:           data,
		SourceBitDepth: int(c.Format.BitsPerSample),
	}
}

// Decode parses a complete WAVE file and decodes its data chunk.
// Trailing bytes that do not fill a whole frame, or a whole block for IMA
// ADPCM, are ignored.
func Decode(data []byte) (*Clip, error) {
	w, err := header.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	if w.Channels > 2 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannels, w.Channels)
	}

	payload, err := w.Payload(data)
	if err != nil {
		return nil, err
	}

	if w.AudioFormat == header.FormatIMAADPCM {
		return decodeIMA(w, payload)
	}

	k, err := SelectKernel(w)
	if err != nil {
		return nil, err
	}

	if int(w.BlockAlign) != k.FrameBytes*int(w.Channels) {
		return nil, fmt.Errorf("%w: block align %d for %d channels of %s", ErrUnsupportedEncoding, w.BlockAlign, w.Channels, k.Name)
	}

	frames := len(payload) / int(w.BlockAlign)
	clip := newClip(w, frames)

	if frames > 0 {
		if w.Channels == 1 {
			k.Mono(payload, clip.Channels[0], frames)
		} else {
			k.Stereo(payload, clip.Channels[0], clip.Channels[1], frames)
		}
	}

	return clip, nil
}

func decodeIMA(w header.WaveFormat, payload []byte) (*Clip, error) {
	spb, err := IMASamplesPerBlock(w)
	if err != nil {
		return nil, err
	}

	blocks := len(payload) / int(w.BlockAlign)
	clip := newClip(w, blocks*spb)

	if blocks > 0 {
		if w.Channels == 1 {
			adpcm.DecodeMono(payload, clip.Channels[0], blocks, spb)
		} else {
			adpcm.DecodeStereo(payload, clip.Channels[0], clip.Channels[1], blocks, spb)
		}
	}

	return clip, nil
}

// IMASamplesPerBlock returns the samples per channel decoded from each IMA
// ADPCM block of w.
//
// The count is derived from the block alignment. A samples-per-block value
// from the fmt extension must match it, or exceed it by one when the writer
// counted the header predictor as a sample.
func IMASamplesPerBlock(w header.WaveFormat) (int, error) {
	spb := adpcm.SamplesPerBlock(int(w.Channels), int(w.BlockAlign))
	if spb == 0 {
		return 0, fmt.Errorf("%w: IMA ADPCM block align %d for %d channels", ErrUnsupportedEncoding, w.BlockAlign, w.Channels)
	}

	if ext := int(w.SamplesPerBlock); ext != 0 && ext != spb && ext != spb+1 {
		return 0, fmt.Errorf("%w: IMA ADPCM declares %d samples per block, block align %d holds %d",
			ErrUnsupportedEncoding, ext, w.BlockAlign, spb)
	}

	return spb, nil
}

func newClip(w header.WaveFormat, frames int) *Clip {
	clip := &Clip{
		Format:   w,
		Channels: make([][]float32, w.Channels),
	}

	for ch := range clip.Channels {
		clip.Channels[ch] = make([]float32, frames)
	}

	return clip
}
