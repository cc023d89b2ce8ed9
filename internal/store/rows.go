package store

import (
	"context"
	"database/sql"

	"gitvfs/internal/pathutil"
)

// ErrNotFound is returned by row lookups that find nothing. It carries
// no POSIX meaning by itself — internal/persistentfs translates it
// into the right vfs.Code for the operation that asked.
var ErrNotFound = sql.ErrNoRows

// ChunkZero is chunk 0 of a path: the row that carries the entity's
// metadata (spec.md §3.2, §3.3 invariant I1/I2).
type ChunkZero struct {
	ParentPath string
	IsDir      bool
	Data       []byte
	IsText     bool // true if the column held TEXT (legacy base64) rather than BLOB
	Size       int64
	Mtime      int64
}

// Chunk is one row of a file's chunk sequence.
type Chunk struct {
	Index      int64
	ParentPath string
	IsDir      bool
	Data       []byte
	IsText     bool
	Size       int64
	Mtime      int64
}

// GetChunkZero reads chunk 0 of path. It returns ErrNotFound if no row
// exists.
func (s *Store) GetChunkZero(ctx context.Context, path string) (*ChunkZero, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT parent_path, is_dir, data, typeof(data), size, mtime
		FROM git_objects WHERE path = ? AND chunk_index = 0
	`, path)

	var (
		cz       ChunkZero
		isDirInt int
		kind     string
		data     []byte
	)
	if err := row.Scan(&cz.ParentPath, &isDirInt, &data, &kind, &cz.Size, &cz.Mtime); err != nil {
		return nil, err
	}
	cz.IsDir = isDirInt != 0
	cz.Data = data
	cz.IsText = kind == "text"
	return &cz, nil
}

// ReadChunks returns every chunk of path ordered by chunk_index
// ascending. An empty, non-error result means the path has no rows at
// all.
func (s *Store) ReadChunks(ctx context.Context, path string) ([]Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT chunk_index, parent_path, is_dir, data, typeof(data), size, mtime
		FROM git_objects WHERE path = ?
		ORDER BY chunk_index ASC
	`, path)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var (
			c        Chunk
			kind     string
			isDirInt int
		)
		if err := rows.Scan(&c.Index, &c.ParentPath, &isDirInt, &c.Data, &kind, &c.Size, &c.Mtime); err != nil {
			return nil, err
		}
		c.IsDir = isDirInt != 0
		c.IsText = kind == "text"
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// InsertDirRow creates a directory's chunk-0 row if it is not already
// present (used for the implicit ancestor creation WriteFile performs
// per spec.md invariant I5; Mkdir uses InsertDirRowDirect).
func (s *Store) InsertDirRow(ctx context.Context, tx *sql.Tx, path, parentPath string, mtime int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO git_objects (path, chunk_index, parent_path, data, is_dir, size, mtime)
		VALUES (?, 0, ?, NULL, 1, 0, ?)
	`, path, parentPath, mtime)
	return err
}

// InsertDirRowDirect is InsertDirRow outside of a transaction, for
// Mkdir's single-row case.
func (s *Store) InsertDirRowDirect(ctx context.Context, path, parentPath string, mtime int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO git_objects (path, chunk_index, parent_path, data, is_dir, size, mtime)
		VALUES (?, 0, ?, NULL, 1, 0, ?)
	`, path, parentPath, mtime)
	return err
}

// DeleteAllChunks removes every row for path.
func (s *Store) DeleteAllChunks(ctx context.Context, tx *sql.Tx, path string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM git_objects WHERE path = ?`, path)
	return err
}

// DeleteAllChunksDirect is DeleteAllChunks outside of a transaction.
func (s *Store) DeleteAllChunksDirect(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM git_objects WHERE path = ?`, path)
	return err
}

// InsertFileChunk writes one chunk row of a file, replacing any row
// already at that (path, chunk_index).
func (s *Store) InsertFileChunk(ctx context.Context, tx *sql.Tx, path string, chunkIndex int64, parentPath string, data []byte, size, mtime int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO git_objects (path, chunk_index, parent_path, data, is_dir, size, mtime)
		VALUES (?, ?, ?, ?, 0, ?, ?)
	`, path, chunkIndex, parentPath, data, size, mtime)
	return err
}

// ListChildNames returns the basenames of every chunk-0 row whose
// parent_path equals dirPath, excluding dirPath itself (it can appear
// as its own parent only at the root, where parent_path is also "").
func (s *Store) ListChildNames(ctx context.Context, dirPath string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path FROM git_objects
		WHERE parent_path = ? AND chunk_index = 0 AND path != ?
	`, dirPath, dirPath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var childPath string
		if err := rows.Scan(&childPath); err != nil {
			return nil, err
		}
		names = append(names, pathutil.Base(childPath))
	}
	return names, rows.Err()
}

// HasChild reports whether dirPath has any child chunk-0 row.
func (s *Store) HasChild(ctx context.Context, dirPath string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM git_objects
		WHERE parent_path = ? AND chunk_index = 0 AND path != ?
	`, dirPath, dirPath).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertChunkAt writes a row at newPath/chunkIndex carrying the same
// data/is_dir/size/mtime as a source chunk, replacing any row already
// there. Used by Rename (spec.md §4.7).
//
// isText preserves the source row's column affinity: a legacy base64
// TEXT chunk is rebound as a string rather than a []byte, so a rename
// never silently upgrades an unmigrated row to BLOB.
func (s *Store) UpsertChunkAt(ctx context.Context, tx *sql.Tx, newPath string, chunkIndex int64, parentPath string, data []byte, isText, isDir bool, size, mtime int64) error {
	isDirInt := 0
	if isDir {
		isDirInt = 1
	}
	var dataArg any = data
	if isText {
		dataArg = string(data)
	}
	_, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO git_objects (path, chunk_index, parent_path, data, is_dir, size, mtime)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, newPath, chunkIndex, parentPath, dataArg, isDirInt, size, mtime)
	return err
}

// RowExists reports whether path has a chunk-0 row, without decoding
// it, for cheap existence checks.
func (s *Store) RowExists(ctx context.Context, path string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM git_objects WHERE path = ? AND chunk_index = 0
	`, path).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
