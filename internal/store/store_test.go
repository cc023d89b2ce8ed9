package store_test

import (
	"context"
	"testing"

	"gitvfs/internal/store"
)

// openTestStore opens an in-memory SQLite store and runs Init,
// grounded on the pack's openTestDB/closeTestDB helper pattern
// (aftermath/internal/database/schema_test.go).
func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.DefaultConfig(":memory:"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	return s
}

func closeTestStore(t *testing.T, s *store.Store) {
	t.Helper()
	if err := s.Close(); err != nil {
		t.Errorf("failed to close test store: %v", err)
	}
}

func TestInitCreatesRoot(t *testing.T) {
	s := openTestStore(t)
	defer closeTestStore(t, s)

	cz, err := s.GetChunkZero(context.Background(), "")
	if err != nil {
		t.Fatalf("GetChunkZero(\"\") failed: %v", err)
	}
	if !cz.IsDir {
		t.Error("root row is not a directory")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	defer closeTestStore(t, s)

	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	exists, err := s.RowExists(context.Background(), "")
	if err != nil {
		t.Fatalf("RowExists failed: %v", err)
	}
	if !exists {
		t.Error("root row missing after second Init")
	}
}
