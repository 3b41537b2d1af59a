package repository

import "testing"

// NewTestStore creates a fresh in-memory SQLite store with the schema applied.
func NewTestStore(t *testing.T) *SQLStore {
	t.Helper()

	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}

	t.Cleanup(func() { store.Close() })

	return store
}
