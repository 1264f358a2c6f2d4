// SPDX-License-Identifier: EPL-2.0

// Package g711 decodes ITU-T G.711 A-law and mu-law codes into normalized
// float32 samples through two 256-entry lookup tables.
//
// The tables are built once, on first use or by an explicit call to Init,
// and are read-only afterwards. Decoders follow the same contract as package
// pcm: one byte per sample, caller owned outputs of at least n elements, and
// no writes at all when the arguments are unusable.
//
// A-law is scaled by 1/32768, so the largest code decodes to 32256/32768.
// Mu-law is scaled by 1/8031 and reaches exactly -1 and +1.
package g711
