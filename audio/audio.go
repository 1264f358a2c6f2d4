// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

// Source is a stream of decoded samples.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize is a suggested dst length for ReadSamples.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by container name (e.g., "wav").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered names in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Decode looks up the decoder registered for format and runs it on rd.
func (r *Registry) Decode(format string, rd io.Reader) (Source, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return d.Decode(rd)
}

// ReadAll drains src into a single interleaved slice, reading bufSize
// values at a time. A bufSize below one frame uses src.BufSize().
func ReadAll(src Source, bufSize int) ([]float32, error) {
	channels := max(src.Channels(), 1)
	if bufSize < channels {
		bufSize = src.BufSize()
	}
	bufSize -= bufSize % channels
	if bufSize <= 0 {
		return nil, fmt.Errorf("%w: buffer of %d values", ErrInvalidDstSize, bufSize)
	}

	out := make([]float32, 0, src.SampleRate()*channels)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n == 0 {
			return out, io.ErrNoProgress
		}
	}
}

// Interleave writes left and right as stereo frames into dst and returns
// the number of values written. It stops at the shorter input or when dst
// runs out of whole frames.
func Interleave(dst, left, right []float32) int {
	frames := min(len(left), len(right), len(dst)/2)

	for i := range frames {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}

	return 2 * frames
}
