package persistentfs

import (
	"context"
	"database/sql"

	"gitvfs/internal/pathutil"
	"gitvfs/internal/vfs"
)

// Rename moves every chunk of old to new, preserving each row's own
// parent_path except at chunk 0, which is rewritten to new's parent
// (spec.md §4.7). It does not create ancestor directories for new and
// does not check that new's parent exists — a higher-level caller is
// expected to ensure that.
func (p *PersistentFS) Rename(ctx context.Context, origOld, origNew string) error {
	oldPath := pathutil.Normalize(origOld)
	newPath := pathutil.Normalize(origNew)

	chunks, err := p.store.ReadChunks(ctx, oldPath)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return vfs.ErrNoEnt("rename", origOld)
	}

	newParentPath := pathutil.Parent(newPath)

	err = p.store.WithTx(ctx, func(tx *sql.Tx) error {
		for _, c := range chunks {
			parentPath := c.ParentPath
			if c.Index == 0 {
				parentPath = newParentPath
			}
			if err := p.store.UpsertChunkAt(ctx, tx, newPath, c.Index, parentPath, c.Data, c.IsText, c.IsDir, c.Size, c.Mtime); err != nil {
				return err
			}
		}
		return p.store.DeleteAllChunks(ctx, tx, oldPath)
	})
	if err != nil {
		return err
	}

	p.invalidate(oldPath)
	p.invalidate(newPath)
	logf("renamed %s -> %s", oldPath, newPath)
	return nil
}
