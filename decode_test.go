// SPDX-License-Identifier: EPL-2.0

package wavkit

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavkit/header"
	"github.com/ik5/wavkit/internal/audiotest"
)

func TestDecode_Encodings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fmt     audiotest.Fmt
		payload []byte
		want    [][]float32
	}{
		{
			name:    "pcm8 mono",
			fmt:     audiotest.PCMFmt(1, 8000, 8),
			payload: audiotest.PCM8([]uint8{0, 128, 192}),
			want:    [][]float32{{-1, 0, 0.5}},
		},
		{
			name:    "pcm16 stereo",
			fmt:     audiotest.PCMFmt(2, 44100, 16),
			payload: audiotest.PCM16([]int16{-32768, 16384, 0, -16384}),
			want:    [][]float32{{-1, 0}, {0.5, -0.5}},
		},
		{
			name:    "pcm24 mono",
			fmt:     audiotest.PCMFmt(1, 48000, 24),
			payload: audiotest.PCM24([]int32{-8388608, 4194304}),
			want:    [][]float32{{-1, 0.5}},
		},
		{
			name:    "pcm32 stereo",
			fmt:     audiotest.PCMFmt(2, 96000, 32),
			payload: audiotest.PCM32([]int32{math.MinInt32, 1 << 30}),
			want:    [][]float32{{-1}, {0.5}},
		},
		{
			name:    "float32 mono",
			fmt:     audiotest.FmtFor(3, 1, 48000, 32),
			payload: audiotest.Float32([]float32{0.25, 3, float32(math.NaN())}),
			want:    [][]float32{{0.25, 1, 0}},
		},
		{
			name:    "float64 stereo",
			fmt:     audiotest.FmtFor(3, 2, 48000, 64),
			payload: audiotest.Float64([]float64{-0.5, math.Inf(1)}),
			want:    [][]float32{{-0.5}, {1}},
		},
		{
			name:    "A-law mono",
			fmt:     audiotest.FmtFor(6, 1, 8000, 8),
			payload: []byte{0xD5, 0x2A},
			want:    [][]float32{{8.0 / 32768, -32256.0 / 32768}},
		},
		{
			name:    "mu-law stereo",
			fmt:     audiotest.FmtFor(7, 2, 8000, 8),
			payload: []byte{0x80, 0x00, 0xFF, 0x7F},
			want:    [][]float32{{1, 0}, {-1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clip, err := Decode(audiotest.WAV(tt.fmt, tt.payload))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if len(clip.Channels) != len(tt.want) {
				t.Fatalf("Decode() channels = %d, want %d", len(clip.Channels), len(tt.want))
			}

			for ch := range tt.want {
				if !slices.Equal(clip.Channels[ch], tt.want[ch]) {
					t.Errorf("channel %d = %v, want %v", ch, clip.Channels[ch], tt.want[ch])
				}
			}

			if clip.Frames() != len(tt.want[0]) {
				t.Errorf("Frames() = %d, want %d", clip.Frames(), len(tt.want[0]))
			}
		})
	}
}

func TestDecode_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	payload := append(audiotest.PCM16([]int16{100, 200, 300, 400}), 0x01, 0x02)
	clip, err := Decode(audiotest.WAV(audiotest.PCMFmt(2, 8000, 16), payload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if clip.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", clip.Frames())
	}
}

func TestDecode_EmptyData(t *testing.T) {
	t.Parallel()

	clip, err := Decode(audiotest.WAV(audiotest.PCMFmt(1, 8000, 16), nil))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if clip.Frames() != 0 || len(clip.Channels) != 1 {
		t.Errorf("Decode() = %d frames in %d channels, want 0 in 1", clip.Frames(), len(clip.Channels))
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	badFloat := audiotest.FmtFor(3, 1, 8000, 32)
	badFloat.BlockAlign = 6

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not a WAV file", append([]byte("RIFX"), make([]byte, 60)...), header.ErrNotWavFile},
		{"short header", []byte("RIFF"), header.ErrShortHeader},
		{"three channels", audiotest.WAV(audiotest.PCMFmt(3, 8000, 16), make([]byte, 12)), ErrUnsupportedChannels},
		{"eight channels", audiotest.WAV(audiotest.PCMFmt(8, 8000, 8), make([]byte, 16)), ErrUnsupportedChannels},
		{"12-bit PCM", audiotest.WAV(audiotest.PCMFmt(1, 8000, 12), make([]byte, 4)), ErrUnsupportedEncoding},
		{"16-bit float", audiotest.WAV(audiotest.FmtFor(3, 1, 8000, 16), make([]byte, 4)), ErrUnsupportedEncoding},
		{"16-bit A-law", audiotest.WAV(audiotest.FmtFor(6, 1, 8000, 16), make([]byte, 4)), ErrUnsupportedEncoding},
		{"generic ADPCM", audiotest.WAV(audiotest.FmtFor(2, 1, 8000, 4), make([]byte, 4)), ErrUnsupportedEncoding},
		{"unknown tag", audiotest.WAV(audiotest.FmtFor(0x55, 1, 8000, 16), make([]byte, 4)), ErrUnsupportedEncoding},
		{"float block align", audiotest.WAV(badFloat, make([]byte, 12)), ErrUnsupportedEncoding},
		{"IMA block too small", audiotest.WAV(audiotest.IMAFmt(1, 8000, 4, 2), make([]byte, 8)), ErrUnsupportedEncoding},
		{"IMA extension mismatch", audiotest.WAV(audiotest.IMAFmt(1, 8000, 256, 100), make([]byte, 256)), ErrUnsupportedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clip, err := Decode(tt.data)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}

			if clip != nil {
				t.Errorf("Decode() clip = %v, want nil", clip)
			}
		})
	}
}

func TestDecode_IMAADPCM(t *testing.T) {
	t.Parallel()

	// Predictor 0, step index 0, codes 7 7 15 0.
	monoBlock := []byte{0, 0, 0, 0, 0x77, 0x0F}
	want := []float32{11.0 / 32768, 41.0 / 32768, -22.0 / 32768, -13.0 / 32768}

	noExt := audiotest.IMAFmt(1, 8000, 6, 4)
	noExt.Extra = nil

	tests := []struct {
		name string
		fmt  audiotest.Fmt
	}{
		{"extension matches", audiotest.IMAFmt(1, 8000, 6, 4)},
		{"extension counts header sample", audiotest.IMAFmt(1, 8000, 6, 5)},
		{"no extension", noExt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload := append(slices.Clone(monoBlock), monoBlock...)
			payload = append(payload, 0x01, 0x02) // partial block

			clip, err := Decode(audiotest.WAV(tt.fmt, payload))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if got := clip.Channels[0]; !slices.Equal(got, append(slices.Clone(want), want...)) {
				t.Errorf("samples = %v, want %v twice", got, want)
			}
		})
	}
}

func TestDecode_IMAADPCMStereo(t *testing.T) {
	t.Parallel()

	// Left predictor 100, right predictor -100, both step index 0.
	block := []byte{100, 0, 0, 0, 0x9C, 0xFF, 0, 0, 0x70, 0x07}

	clip, err := Decode(audiotest.WAV(audiotest.IMAFmt(2, 8000, len(block), 2), block))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	wantL := []float32{100.0 / 32768, 111.0 / 32768}
	wantR := []float32{-89.0 / 32768, -87.0 / 32768}

	if !slices.Equal(clip.Channels[0], wantL) || !slices.Equal(clip.Channels[1], wantR) {
		t.Errorf("Decode() = %v %v, want %v %v", clip.Channels[0], clip.Channels[1], wantL, wantR)
	}
}

func TestIMASamplesPerBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels, blockAlign, ext int
		want                      int
		wantErr                   bool
	}{
		{1, 256, 0, 504, false},
		{1, 256, 504, 504, false},
		{1, 256, 505, 504, false},
		{1, 256, 506, 0, true},
		{2, 2048, 2041, 2040, false},
		{2, 8, 0, 0, true},
	}

	for _, tt := range tests {
		w := header.WaveFormat{
			AudioFormat:     header.FormatIMAADPCM,
			Channels:        uint16(tt.channels),
			BlockAlign:      uint16(tt.blockAlign),
			SamplesPerBlock: uint16(tt.ext),
		}

		got, err := IMASamplesPerBlock(w)
		if (err != nil) != tt.wantErr {
			t.Errorf("IMASamplesPerBlock(%+v) error = %v, wantErr %v", tt, err, tt.wantErr)
			continue
		}

		if got != tt.want {
			t.Errorf("IMASamplesPerBlock(%+v) = %d, want %d", tt, got, tt.want)
		}
	}
}

func TestSelectKernel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format header.Format
		bits   uint16
		want   string
	}{
		{header.FormatPCM, 8, "pcm8"},
		{header.FormatPCM, 16, "pcm16"},
		{header.FormatPCM, 24, "pcm24"},
		{header.FormatPCM, 32, "pcm32"},
		{header.FormatIEEEFloat, 32, "float32"},
		{header.FormatIEEEFloat, 64, "float64"},
		{header.FormatALaw, 8, "alaw"},
		{header.FormatMuLaw, 8, "mulaw"},
		{header.FormatPCM, 20, ""},
		{header.FormatIMAADPCM, 4, ""},
		{header.FormatADPCM, 4, ""},
	}

	for _, tt := range tests {
		k, err := SelectKernel(header.WaveFormat{AudioFormat: tt.format, BitsPerSample: tt.bits})

		if tt.want == "" {
			if !errors.Is(err, ErrUnsupportedEncoding) {
				t.Errorf("SelectKernel(%s, %d) error = %v, want ErrUnsupportedEncoding", tt.format, tt.bits, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("SelectKernel(%s, %d) error = %v", tt.format, tt.bits, err)
			continue
		}

		if k.Name != tt.want || k.Mono == nil || k.Stereo == nil {
			t.Errorf("SelectKernel(%s, %d) = %q, want %q", tt.format, tt.bits, k.Name, tt.want)
		}

		if k.FrameBytes != int(tt.bits)/8 {
			t.Errorf("SelectKernel(%s, %d).FrameBytes = %d", tt.format, tt.bits, k.FrameBytes)
		}
	}
}

func TestClip_Float32Buffer(t *testing.T) {
	t.Parallel()

	clip := &Clip{
		Format:   header.WaveFormat{SampleRate: 8000, BitsPerSample: 16, Channels: 2},
		Channels: [][]float32{{1, 2, 3}, {-1, -2, -3}},
	}

	buf := clip.Float32Buffer()

	if want := []float32{1, -1, 2, -2, 3, -3}; !slices.Equal(buf.Data, want) {
		t.Errorf("Data = %v, want %v", buf.Data, want)
	}

	if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 8000 || buf.SourceBitDepth != 16 {
		t.Errorf("Format = %+v, SourceBitDepth = %d", buf.Format, buf.SourceBitDepth)
	}

	if buf.NumFrames() != 3 {
		t.Errorf("NumFrames() = %d, want 3", buf.NumFrames())
	}

	if got := clip.Duration(); got != 375*time.Microsecond {
		t.Errorf("Duration() = %v, want 375µs", got)
	}
}

// go-audio/wav is an independent reader of the same files; its integer
// samples scaled by the bit depth must equal what Decode returns.
func TestDecode_MatchesGoAudioDecoder(t *testing.T) {
	t.Parallel()

	const frames = 300

	for _, bits := range []int{8, 16, 24, 32} {
		for _, channels := range []int{1, 2} {
			payload := audiotest.RandomBytes(frames*channels*bits/8, uint64(bits*channels))
			data := audiotest.WAV(audiotest.PCMFmt(channels, 22050, bits), payload)

			clip, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode(%d-bit, %d ch) error = %v", bits, channels, err)
			}

			ref, err := gowav.NewDecoder(bytes.NewReader(data)).FullPCMBuffer()
			if err != nil {
				t.Fatalf("go-audio FullPCMBuffer(%d-bit, %d ch) error = %v", bits, channels, err)
			}

			if len(ref.Data) != frames*channels {
				t.Fatalf("go-audio returned %d samples, want %d", len(ref.Data), frames*channels)
			}

			for i, v := range ref.Data {
				want := scaleInt(v, bits)
				got := clip.Channels[i%channels][i/channels]
				if got != want {
					t.Fatalf("%d-bit %d ch sample %d = %v, go-audio gives %v", bits, channels, i, got, want)
				}
			}
		}
	}
}

// Files written by go-audio/wav decode to the samples that were encoded.
func TestDecode_GoAudioEncodedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tone.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	samples := audiotest.ToInt16(audiotest.Generate(audiotest.Sine(16000, 440, 0.8), 2, 1600))
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}

	enc := gowav.NewEncoder(f, 16000, 16, 2, 1)
	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 2, SampleRate: 16000},
		Data:           ints,
		SourceBitDepth: 16,
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	clip, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if clip.Format.SampleRate != 16000 || clip.Frames() != 1600 {
		t.Fatalf("Decode() = %d Hz, %d frames; want 16000 Hz, 1600 frames", clip.Format.SampleRate, clip.Frames())
	}

	for i, s := range samples {
		if got, want := clip.Channels[i%2][i/2], float32(s)/32768; got != want {
			t.Fatalf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func scaleInt(v, bits int) float32 {
	switch bits {
	case 8:
		return (float32(v) - 128) / 128
	case 16:
		return float32(v) / 32768
	case 24:
		return float32(v) / 8388608
	default:
		return float32(int32(v)) / 2147483648
	}
}

func BenchmarkDecode_PCM16Stereo(b *testing.B) {
	payload := audiotest.RandomBytes(44100*4, 1)
	data := audiotest.WAV(audiotest.PCMFmt(2, 44100, 16), payload)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Decode(data)
	}
}

func BenchmarkDecode_MuLawMono(b *testing.B) {
	payload := audiotest.RandomBytes(8000*10, 1)
	data := audiotest.WAV(audiotest.FmtFor(7, 1, 8000, 8), payload)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Decode(data)
	}
}
