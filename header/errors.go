// SPDX-License-Identifier: EPL-2.0

package header

import "errors"

var (
	ErrNotWavFile         = errors.New("not a WAV file")
	ErrShortHeader        = errors.New("buffer shorter than a WAV header")
	ErrInvalidRIFFSize    = errors.New("invalid RIFF size")
	ErrChunkTooLarge      = errors.New("chunk exceeds buffer or size limit")
	ErrFmtTooShort        = errors.New("fmt chunk too short")
	ErrInvalidFormat      = errors.New("invalid fmt chunk values")
	ErrBlockAlignMismatch = errors.New("block align does not match channels and bit depth")
	ErrByteRateMismatch   = errors.New("byte rate does not match sample rate and block align")
	ErrOffsetOverflow     = errors.New("chunk offset overflow")
	ErrMissingFmt         = errors.New("fmt chunk not found")
	ErrMissingData        = errors.New("data chunk not found")
	ErrTruncatedPayload   = errors.New("data chunk truncated")
)
