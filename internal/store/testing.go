package store

import "testing"

// NewTestStore creates a Store backed by an in-memory database.
// This is only intended for use in tests.
func NewTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
