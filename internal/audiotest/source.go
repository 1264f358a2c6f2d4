// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// Source is an in-memory audio.Source rendering a Waveform.
type Source struct {
	Rate     int
	Chans    int
	Frames   int
	Wave     Waveform
	Buf      int
	position int
	closed   bool
}

// NewSource returns a source producing frames frames of w.
func NewSource(sampleRate, channels, frames int, w Waveform) *Source {
	return &Source{Rate: sampleRate, Chans: channels, Frames: frames, Wave: w, Buf: 4096}
}

// NewConstantSource returns a source where every sample equals value.
func NewConstantSource(sampleRate, channels, frames int, value float64) *Source {
	return NewSource(sampleRate, channels, frames, func(int, int) float64 { return value })
}

func (s *Source) SampleRate() int { return s.Rate }
func (s *Source) Channels() int   { return s.Chans }
func (s *Source) BufSize() int    { return s.Buf }

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.position >= s.Frames {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.Chans, s.Frames-s.position)
	for f := range frames {
		for ch := range s.Chans {
			dst[f*s.Chans+ch] = float32(s.Wave(s.position+f, ch))
		}
	}

	s.position += frames
	if s.position >= s.Frames {
		return frames * s.Chans, io.EOF
	}

	return frames * s.Chans, nil
}
