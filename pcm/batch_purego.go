// SPDX-License-Identifier: EPL-2.0

//go:build purego

package pcm

const useBatch = false
