// SPDX-License-Identifier: EPL-2.0

//go:build !purego

package g711

// useBatch selects the fixed-width block loops over the scalar ones.
const useBatch = true
