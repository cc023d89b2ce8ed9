package store

import (
	"context"
	"strings"
)

// ExportedObject is one (path, bytes) pair as returned by ExportObjects.
type ExportedObject struct {
	Path string
	Data []byte
}

// ExportObjects returns every non-directory row whose path begins with
// ".git/", grouped by path and concatenated in chunk_index order, with
// paths themselves in deterministic ascending order (spec.md §4.10).
// The ORDER BY here is load-bearing, not incidental — relying on
// incidental index order would be unsafe (spec.md §9 Open Questions).
func (s *Store) ExportObjects(ctx context.Context) ([]ExportedObject, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, chunk_index, data, typeof(data)
		FROM git_objects
		WHERE is_dir = 0 AND path LIKE '.git/%'
		ORDER BY path ASC, chunk_index ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		result  []ExportedObject
		current *ExportedObject
	)
	for rows.Next() {
		var (
			path       string
			chunkIndex int64
			data       []byte
			kind       string
		)
		if err := rows.Scan(&path, &chunkIndex, &data, &kind); err != nil {
			return nil, err
		}
		if !strings.HasPrefix(path, ".git/") {
			continue
		}

		if current == nil || current.Path != path {
			if current != nil {
				result = append(result, *current)
			}
			current = &ExportedObject{Path: path}
		}
		current.Data = append(current.Data, decodeChunk(data, kind == "text")...)
	}
	if current != nil {
		result = append(result, *current)
	}
	return result, rows.Err()
}
