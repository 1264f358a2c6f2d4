// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"
	"strings"

	"github.com/ik5/wavkit/audio"
	"github.com/ik5/wavkit/internal/audiotest"
)

type toneDecoder struct{}

func (toneDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewConstantSource(8000, 2, 8000, 0.25), nil
}

// Example_registry shows decoder lookup by container name.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", toneDecoder{})

	src, err := registry.Decode("wav", strings.NewReader(""))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer src.Close()

	fmt.Println(registry.Formats(), src.SampleRate(), src.Channels())

	_, err = registry.Decode("mp3", strings.NewReader(""))
	fmt.Println(err)
	// Output:
	// [wav] 8000 2
	// no decoder registered for format: "mp3"
}

// Example_readLoop is the usual way to consume a Source.
func Example_readLoop() {
	src := audiotest.NewConstantSource(8000, 1, 10000, 0.5)
	buf := make([]float32, src.BufSize())
	total := 0

	for {
		n, err := src.ReadSamples(buf)
		total += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Println("samples:", total)
	// Output: samples: 10000
}

func ExampleReadAll() {
	src := audiotest.NewConstantSource(8000, 2, 3, -0.5)

	samples, err := audio.ReadAll(src, 4)
	fmt.Println(samples, err)
	// Output: [-0.5 -0.5 -0.5 -0.5 -0.5 -0.5] <nil>
}

func ExampleInterleave() {
	dst := make([]float32, 4)
	n := audio.Interleave(dst, []float32{1, 2}, []float32{-1, -2})

	fmt.Println(dst[:n])
	// Output: [1 -1 2 -2]
}
