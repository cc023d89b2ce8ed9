package store

import "context"

// Stats is the result of StorageStats: counts and sizes over every
// non-directory path in the table (spec.md §4.11).
type Stats struct {
	TotalObjects  int64
	TotalBytes    int64
	LargestPath   string
	LargestBytes  int64
	HasLargest    bool
}

// StorageStats scans every non-directory chunk and reports the number
// of distinct file paths, the total stored byte count (legacy base64
// text counted by character length, not decoded length — preserved
// deliberately per spec.md §9 Open Questions), and the single largest
// object by that same accounting.
func (s *Store) StorageStats(ctx context.Context) (*Stats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COALESCE(length(data), 0)
		FROM git_objects
		WHERE is_dir = 0
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perPath := make(map[string]int64)
	var order []string
	for rows.Next() {
		var path string
		var n int64
		if err := rows.Scan(&path, &n); err != nil {
			return nil, err
		}
		if _, seen := perPath[path]; !seen {
			order = append(order, path)
		}
		perPath[path] += n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := &Stats{TotalObjects: int64(len(order))}
	for _, path := range order {
		n := perPath[path]
		out.TotalBytes += n
		if !out.HasLargest || n > out.LargestBytes {
			out.HasLargest = true
			out.LargestBytes = n
			out.LargestPath = path
		}
	}
	logf("storage stats: %d objects, %d bytes", out.TotalObjects, out.TotalBytes)
	return out, nil
}
