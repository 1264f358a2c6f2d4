// SPDX-License-Identifier: EPL-2.0

package g711_test

import (
	"fmt"

	"github.com/ik5/wavkit/g711"
)

func ExampleDecodeMuLawMono() {
	out := make([]float32, 3)
	g711.DecodeMuLawMono([]byte{0x00, 0xFF, 0x80}, out, 3)

	fmt.Println(out)
	// Output: [-1 0 1]
}

func ExampleDecodeALawStereo() {
	left, right := make([]float32, 1), make([]float32, 1)
	g711.DecodeALawStereo([]byte{0xAA, 0x55}, left, right, 1)

	fmt.Println(left[0]*32768, right[0]*32768)
	// Output: 32256 -8
}

func ExampleALawTable() {
	g711.Init()
	table := g711.ALawTable()

	fmt.Println(table[0xD5] * 32768)
	// Output: 8
}
