package config

import (
	"os"
	"testing"
)

// unsetForTest removes keys for the rest of the test; t.Setenv must have been called first
// so the original values are restored on cleanup.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
