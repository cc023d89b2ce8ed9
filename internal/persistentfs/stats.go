package persistentfs

import (
	"context"

	"gitvfs/internal/vfs"
)

// StorageStats reports object counts and byte totals across every
// stored file (spec.md §4.11).
func (p *PersistentFS) StorageStats(ctx context.Context) (*vfs.StorageStats, error) {
	s, err := p.store.StorageStats(ctx)
	if err != nil {
		return nil, err
	}

	out := &vfs.StorageStats{
		TotalObjects: s.TotalObjects,
		TotalBytes:   s.TotalBytes,
	}
	if s.HasLargest {
		out.LargestObject = &vfs.LargestObject{Path: s.LargestPath, Bytes: s.LargestBytes}
	}
	return out, nil
}
