package store

import (
	"context"
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const v2Schema = `
CREATE TABLE IF NOT EXISTS git_objects (
	path        TEXT    NOT NULL,
	chunk_index INTEGER NOT NULL,
	parent_path TEXT    NOT NULL DEFAULT '',
	data        BLOB,
	is_dir      INTEGER NOT NULL DEFAULT 0,
	size        INTEGER NOT NULL DEFAULT 0,
	mtime       INTEGER NOT NULL,
	PRIMARY KEY (path, chunk_index)
);
CREATE INDEX IF NOT EXISTS idx_git_objects_parent ON git_objects(parent_path, path);
CREATE INDEX IF NOT EXISTS idx_git_objects_is_dir ON git_objects(is_dir, path);
`

// Init detects the on-disk schema version and migrates v1 (single row
// per path, no chunk_index) to v2 (chunked, the shape the rest of this
// package assumes) in place, or creates the v2 schema on a fresh
// store. It is idempotent: calling it again against an already-v2
// store only ensures the root directory row exists.
func (s *Store) Init(ctx context.Context) error {
	present, hasChunkIndex, err := s.inspectSchema(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	switch {
	case !present:
		logf("git_objects table absent, creating v2 schema")
		if _, err := s.db.ExecContext(ctx, v2Schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	case !hasChunkIndex:
		log.Warnf("[store] git_objects table is v1 (legacy, base64-capable), migrating to v2")
		if err := s.migrateV1ToV2(ctx); err != nil {
			return fmt.Errorf("failed to migrate v1 schema: %w", err)
		}
	default:
		logf("git_objects table already at v2, no migration needed")
	}

	return s.ensureRoot(ctx)
}

// inspectSchema reports whether git_objects exists, and if so whether
// it already carries the chunk_index column.
func (s *Store) inspectSchema(ctx context.Context) (present, hasChunkIndex bool, err error) {
	var name string
	err = s.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name='git_objects'`).Scan(&name)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(git_objects)`)
	if err != nil {
		return true, false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			colName    string
			colType    string
			notNull    int
			dfltValue  any
			primaryKey int
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dfltValue, &primaryKey); err != nil {
			return true, false, err
		}
		if colName == "chunk_index" {
			return true, true, rows.Err()
		}
	}
	return true, false, rows.Err()
}

// migrateV1ToV2 copies every legacy row into a v2-shaped shadow table,
// preserving data byte-for-byte (legacy base64 text stays base64 text;
// size is reset to 0 per spec.md §4.2, resolved lazily on read in
// persistentfs), then swaps the shadow in for the original. The whole
// operation runs in one transaction: a partial migration would lose
// rows, which spec.md calls out as fatal.
func (s *Store) migrateV1ToV2(ctx context.Context) error {
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			CREATE TABLE git_objects_v2_shadow (
				path        TEXT    NOT NULL,
				chunk_index INTEGER NOT NULL,
				parent_path TEXT    NOT NULL DEFAULT '',
				data        BLOB,
				is_dir      INTEGER NOT NULL DEFAULT 0,
				size        INTEGER NOT NULL DEFAULT 0,
				mtime       INTEGER NOT NULL,
				PRIMARY KEY (path, chunk_index)
			)
		`); err != nil {
			return fmt.Errorf("failed to create shadow table: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			INSERT INTO git_objects_v2_shadow (path, chunk_index, parent_path, data, is_dir, size, mtime)
			SELECT path, 0, parent_path, data, is_dir, 0, mtime FROM git_objects
		`)
		if err != nil {
			return fmt.Errorf("failed to copy legacy rows: %w", err)
		}
		if n, err := result.RowsAffected(); err == nil {
			logf("migrated %d legacy rows to v2 shadow table", n)
		}

		if _, err := tx.ExecContext(ctx, `DROP TABLE git_objects`); err != nil {
			return fmt.Errorf("failed to drop legacy table: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `ALTER TABLE git_objects_v2_shadow RENAME TO git_objects`); err != nil {
			return fmt.Errorf("failed to rename shadow table: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `CREATE INDEX idx_git_objects_parent ON git_objects(parent_path, path)`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `CREATE INDEX idx_git_objects_is_dir ON git_objects(is_dir, path)`); err != nil {
			return err
		}
		return nil
	})
}

// ensureRoot inserts the root directory row if absent (spec.md
// invariant I4).
func (s *Store) ensureRoot(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO git_objects (path, chunk_index, parent_path, data, is_dir, size, mtime)
		VALUES ('', 0, '', NULL, 1, 0, ?)
	`, nowMillis())
	return err
}
