package testsupport

import (
	"context"
	"testing"

	"rollcall/internal/config"
	"rollcall/internal/records"
	"rollcall/internal/snapshot"
)

// MustOpenStore opens a snapshot.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *snapshot.Store {
	t.Helper()

	store, err := snapshot.Open(cfg)
	if err != nil {
		t.Fatalf("snapshot.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SaveDataset persists a dataset for tests using the provided store.
func SaveDataset(t testing.TB, store *snapshot.Store, source string, ds records.Dataset) *snapshot.Snapshot {
	t.Helper()

	snap, err := store.Save(context.Background(), source, ds)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return snap
}
