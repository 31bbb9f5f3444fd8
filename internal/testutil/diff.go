package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// RequireBytesEqual fails the test when got differs from want, printing a
// readable diff instead of two opaque byte dumps.
func RequireBytesEqual(t *testing.T, want, got []byte) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}
