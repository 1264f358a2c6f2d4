// SPDX-License-Identifier: EPL-2.0

package adpcm

import (
	"encoding/binary"

	"github.com/ik5/wavkit/utils"
)

// HeaderSize is the size of one channel's block header.
const HeaderSize = 4

// State is the running decoder state of one channel.
type State struct {
	Predictor int32
	Index     int32
}

// Next applies one 4-bit code and returns the new predictor. An Index
// outside [0, MaxIndex] is clamped first.
func (s *State) Next(nibble byte) int16 {
	nibble &= 0x0f
	s.Index = utils.ClampInt32(s.Index, 0, int32(MaxIndex))
	step := stepTable[s.Index]

	diff := step >> 3
	if nibble&4 != 0 {
		diff += step
	}
	if nibble&2 != 0 {
		diff += step >> 1
	}
	if nibble&1 != 0 {
		diff += step >> 2
	}

	if nibble&8 != 0 {
		s.Predictor -= diff
	} else {
		s.Predictor += diff
	}
	s.Predictor = utils.ClampInt32(s.Predictor, -32768, 32767)
	s.Index = utils.ClampInt32(s.Index+int32(indexTable[nibble]), 0, int32(MaxIndex))

	return int16(s.Predictor)
}

// Reset loads the state from a block header. Out of range step indices are
// clamped.
func (s *State) Reset(h []byte) {
	s.Predictor = int32(int16(binary.LittleEndian.Uint16(h)))
	s.Index = utils.ClampInt32(int32(h[2]), 0, int32(MaxIndex))
}
