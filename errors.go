// SPDX-License-Identifier: EPL-2.0

package wavkit

import "errors"

var (
	// ErrUnsupportedEncoding is returned for format tags and bit depths
	// without a kernel.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrUnsupportedChannels is returned for files with more than two
	// channels.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)
