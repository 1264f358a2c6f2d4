// SPDX-License-Identifier: EPL-2.0

//go:build !purego

package g711

import "testing"

func TestBatching_EnabledByDefault(t *testing.T) {
	t.Parallel()

	if !Batching() {
		t.Fatal("block path disabled without the purego tag")
	}
}
