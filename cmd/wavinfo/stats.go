// SPDX-License-Identifier: EPL-2.0

package main

import (
	"math"

	"github.com/ik5/wavkit/utils"
)

// channelStats summarises the samples of one channel.
type channelStats struct {
	Peak float32
	RMS  float64
}

// PeakDBFS returns the peak level relative to full scale.
// Silence reports negative infinity.
func (s channelStats) PeakDBFS() float64 {
	return dbfs(float64(s.Peak))
}

// RMSDBFS returns the RMS level relative to full scale.
func (s channelStats) RMSDBFS() float64 {
	return dbfs(s.RMS)
}

// Peak16 returns the peak as a 16-bit sample value.
func (s channelStats) Peak16() int16 {
	return utils.Float32ToInt16(s.Peak)
}

func dbfs(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

// measure computes stats over one channel.
func measure(samples []float32) channelStats {
	var (
		st  channelStats
		sum float64
	)

	for _, s := range samples {
		a := float32(math.Abs(float64(s)))
		if a > st.Peak {
			st.Peak = a
		}
		sum += float64(s) * float64(s)
	}

	if len(samples) > 0 {
		st.RMS = math.Sqrt(sum / float64(len(samples)))
	}

	return st
}

// measureInterleaved computes per channel stats over interleaved frames.
// A trailing partial frame is ignored.
func measureInterleaved(samples []float32, channels int) []channelStats {
	if channels <= 0 {
		return nil
	}

	frames := len(samples) / channels
	plane := make([]float32, frames)
	out := make([]channelStats, channels)

	for ch := range channels {
		for i := range frames {
			plane[i] = samples[i*channels+ch]
		}
		out[ch] = measure(plane)
	}

	return out
}
