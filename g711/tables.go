// SPDX-License-Identifier: EPL-2.0

package g711

import (
	"sync"

	"github.com/zaf/g711"
)

const (
	scaleALaw = 32768

	// zaf/g711 returns mu-law values shifted left by 2, so full scale is
	// 4*8031 rather than 8031.
	scaleMuLaw = 4 * 8031
)

var (
	once       sync.Once
	aLawTable  [256]float32
	muLawTable [256]float32
)

// Init builds the decode tables. It is safe to call from any number of
// goroutines; only the first call does any work.
func Init() {
	once.Do(func() {
		for i := range 256 {
			aLawTable[i] = float32(g711.DecodeAlawFrame(uint8(i))) / scaleALaw
			muLawTable[i] = float32(g711.DecodeUlawFrame(uint8(i))) / scaleMuLaw
		}
	})
}

// ALawTable returns the A-law table. Callers must not modify it.
func ALawTable() *[256]float32 {
	Init()
	return &aLawTable
}

// MuLawTable returns the mu-law table. Callers must not modify it.
func MuLawTable() *[256]float32 {
	Init()
	return &muLawTable
}
