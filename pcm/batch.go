// SPDX-License-Identifier: EPL-2.0

//go:build !purego

package pcm

// useBatch selects the fixed-width block loops over the scalar ones.
const useBatch = true
