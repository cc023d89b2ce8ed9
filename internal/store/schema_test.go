package store

import (
	"context"
	"testing"
)

// TestMigrateV1ToV2 seeds a legacy single-row-per-file table (no
// chunk_index column, base64 text data) and checks that Init migrates
// it in place while preserving the row's bytes and resetting size to 0
// (spec.md §4.2).
func TestMigrateV1ToV2(t *testing.T) {
	s, err := Open(DefaultConfig(":memory:"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE git_objects (
			path        TEXT NOT NULL PRIMARY KEY,
			parent_path TEXT NOT NULL DEFAULT '',
			data        TEXT,
			is_dir      INTEGER NOT NULL DEFAULT 0,
			mtime       INTEGER NOT NULL
		)
	`); err != nil {
		t.Fatalf("failed to seed v1 schema: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO git_objects (path, parent_path, data, is_dir, mtime)
		VALUES ('readme', '', 'aGVsbG8=', 0, 1000)
	`); err != nil {
		t.Fatalf("failed to seed v1 row: %v", err)
	}

	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init (migration) failed: %v", err)
	}

	cz, err := s.GetChunkZero(ctx, "readme")
	if err != nil {
		t.Fatalf("GetChunkZero(readme) failed: %v", err)
	}
	if cz.Size != 0 {
		t.Errorf("migrated row size = %d, want 0 (lazy resolution)", cz.Size)
	}
	if !cz.IsText {
		t.Error("migrated row lost its TEXT affinity")
	}
	if string(cz.Data) != "aGVsbG8=" {
		t.Errorf("migrated row data = %q, want %q", cz.Data, "aGVsbG8=")
	}
	if LegacyDecodedLen(cz.Data) != 5 {
		t.Errorf("LegacyDecodedLen(%q) = %d, want 5", cz.Data, LegacyDecodedLen(cz.Data))
	}

	root, err := s.GetChunkZero(ctx, "")
	if err != nil {
		t.Fatalf("root row missing after migration: %v", err)
	}
	if !root.IsDir {
		t.Error("root row is not a directory after migration")
	}
}

func TestInspectSchemaAbsent(t *testing.T) {
	s, err := Open(DefaultConfig(":memory:"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	defer s.Close()

	present, hasChunkIndex, err := s.inspectSchema(context.Background())
	if err != nil {
		t.Fatalf("inspectSchema failed: %v", err)
	}
	if present || hasChunkIndex {
		t.Errorf("inspectSchema on fresh store = (%v, %v), want (false, false)", present, hasChunkIndex)
	}
}
