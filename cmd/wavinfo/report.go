// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/ik5/wavkit"
	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/header"
)

// report describes one inspected file.
type report struct {
	Path     string
	Format   header.WaveFormat
	Frames   int
	Duration time.Duration
	Streamed bool
	Stats    []channelStats
}

// inspector decodes files either at once or through a registry source.
type inspector struct {
	log   zerolog.Logger
	reg   *audio.Registry
	batch int
}

func (in inspector) inspect(path string) (report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report{}, fmt.Errorf("read %s: %w", path, err)
	}

	return in.inspectBytes(path, data)
}

func (in inspector) inspectBytes(path string, data []byte) (report, error) {
	w, err := header.Parse(data)
	if err != nil {
		return report{}, fmt.Errorf("parse header: %w", err)
	}

	r := report{Path: path, Format: w}

	in.log.Debug().
		Str("file", path).
		Stringer("encoding", w.AudioFormat).
		Int("batch", in.batch).
		Msg("decoding")

	if in.batch > 0 {
		src, err := in.reg.Decode("wav", bytes.NewReader(data))
		if err != nil {
			return r, err
		}
		defer src.Close()

		samples, err := audio.ReadAll(src, in.batch*src.Channels())
		if err != nil {
			return r, fmt.Errorf("stream samples: %w", err)
		}

		channels := src.Channels()
		r.Streamed = true
		r.Frames = len(samples) / channels
		r.Duration = time.Duration(r.Frames) * time.Second / time.Duration(src.SampleRate())
		r.Stats = measureInterleaved(samples, channels)

		return r, nil
	}

	clip, err := wavkit.Decode(data)
	if err != nil {
		return r, err
	}

	r.Frames = clip.Frames()
	r.Duration = clip.Duration()
	r.Stats = make([]channelStats, len(clip.Channels))
	for ch, samples := range clip.Channels {
		r.Stats[ch] = measure(samples)
	}

	return r, nil
}

// printReport writes r as human readable text.
func printReport(w io.Writer, r report) {
	title := color.New(color.FgCyan, color.Bold)
	key := color.New(color.FgYellow)
	quiet := color.New(color.FgRed)

	title.Fprintln(w, r.Path)

	f := r.Format
	key.Fprintf(w, "  %-9s", "encoding")
	fmt.Fprintf(w, " %s, %d bit\n", f.AudioFormat, f.BitsPerSample)
	key.Fprintf(w, "  %-9s", "channels")
	fmt.Fprintf(w, " %d\n", f.Channels)
	key.Fprintf(w, "  %-9s", "rate")
	fmt.Fprintf(w, " %d Hz\n", f.SampleRate)
	key.Fprintf(w, "  %-9s", "block")
	fmt.Fprintf(w, " %d bytes, %d bytes/s\n", f.BlockAlign, f.ByteRate)

	if f.AudioFormat == header.FormatIMAADPCM {
		key.Fprintf(w, "  %-9s", "spb")
		fmt.Fprintf(w, " %d\n", f.SamplesPerBlock)
	}

	key.Fprintf(w, "  %-9s", "data")
	fmt.Fprintf(w, " %d bytes at %d\n", f.DataSize, f.DataOffset)
	key.Fprintf(w, "  %-9s", "frames")
	fmt.Fprintf(w, " %d (%s)\n", r.Frames, r.Duration)

	for ch, st := range r.Stats {
		key.Fprintf(w, "  %-9s", fmt.Sprintf("ch%d", ch))

		if st.Peak == 0 {
			quiet.Fprintln(w, " silent")
			continue
		}

		fmt.Fprintf(w, " peak %.4f (%d) %.2f dBFS, rms %.4f %.2f dBFS\n",
			st.Peak, st.Peak16(), st.PeakDBFS(), st.RMS, st.RMSDBFS())
	}
}

// logReport writes r as a single JSON event.
func logReport(out zerolog.Logger, r report) {
	peaks := make([]float32, len(r.Stats))
	rms := make([]float64, len(r.Stats))
	for i, st := range r.Stats {
		peaks[i] = st.Peak
		rms[i] = st.RMS
	}

	f := r.Format
	out.Log().
		Str("file", r.Path).
		Str("encoding", f.AudioFormat.String()).
		Uint16("channels", f.Channels).
		Uint32("sample_rate", f.SampleRate).
		Uint16("bits_per_sample", f.BitsPerSample).
		Uint16("block_align", f.BlockAlign).
		Uint32("data_size", f.DataSize).
		Int("frames", r.Frames).
		Dur("duration", r.Duration).
		Bool("streamed", r.Streamed).
		Floats32("peak", peaks).
		Floats64("rms", rms).
		Send()
}
