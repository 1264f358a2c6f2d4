// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV files and sample payloads for tests.
//
// Builders never validate their input so they can express malformed files as
// well as valid ones.
package audiotest
