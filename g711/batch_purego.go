// SPDX-License-Identifier: EPL-2.0

//go:build purego

package g711

const useBatch = false
