package persistentfs

import (
	"context"

	"gitvfs/internal/pathutil"
	"gitvfs/internal/vfs"
)

// ReadDir lists the basenames of path's direct children, in no
// guaranteed order (spec.md §4.6).
func (p *PersistentFS) ReadDir(ctx context.Context, origPath string) ([]string, error) {
	path := pathutil.Normalize(origPath)

	cz, found, err := p.chunkZero(ctx, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vfs.ErrNoEnt("scandir", origPath)
	}
	if !cz.IsDir {
		return nil, vfs.ErrNotDir("scandir", origPath)
	}

	return p.store.ListChildNames(ctx, path)
}

// Mkdir creates a single directory. It is not recursive — WriteFile is
// the only operation that implicitly creates ancestors (spec.md §4.6).
func (p *PersistentFS) Mkdir(ctx context.Context, origPath string) error {
	path := pathutil.Normalize(origPath)
	if path == "" {
		return nil
	}

	parts := pathutil.Split(path)
	parentPath := pathutil.Join(parts[:len(parts)-1])

	if len(parts) > 1 {
		parentCz, found, err := p.chunkZero(ctx, parentPath)
		if err != nil {
			return err
		}
		if !found || !parentCz.IsDir {
			return vfs.ErrNoEnt("mkdir", origPath)
		}
	}

	cz, found, err := p.chunkZero(ctx, path)
	if err != nil {
		return err
	}
	if found {
		if cz.IsDir {
			return nil
		}
		return vfs.ErrExist("mkdir", origPath)
	}

	if err := p.store.InsertDirRowDirect(ctx, path, parentPath, nowMillis()); err != nil {
		return err
	}
	p.invalidate(path)
	return nil
}

// Rmdir removes an empty directory (spec.md §4.5).
func (p *PersistentFS) Rmdir(ctx context.Context, origPath string) error {
	path := pathutil.Normalize(origPath)
	if path == "" {
		return errRootOp("remove")
	}

	cz, found, err := p.chunkZero(ctx, path)
	if err != nil {
		return err
	}
	if !found {
		return vfs.ErrNoEnt("rmdir", origPath)
	}
	if !cz.IsDir {
		return vfs.ErrNotDir("rmdir", origPath)
	}

	hasChild, err := p.store.HasChild(ctx, path)
	if err != nil {
		return err
	}
	if hasChild {
		return vfs.ErrNotEmpty("rmdir", origPath)
	}

	if err := p.store.DeleteAllChunksDirect(ctx, path); err != nil {
		return err
	}
	p.invalidate(path)
	return nil
}

// Unlink removes a file. Directories must go through Rmdir (spec.md §4.5).
func (p *PersistentFS) Unlink(ctx context.Context, origPath string) error {
	path := pathutil.Normalize(origPath)

	cz, found, err := p.chunkZero(ctx, path)
	if err != nil {
		return err
	}
	if !found {
		return vfs.ErrNoEnt("unlink", origPath)
	}
	if cz.IsDir {
		return vfs.ErrPerm("unlink", origPath)
	}

	if err := p.store.DeleteAllChunksDirect(ctx, path); err != nil {
		return err
	}
	p.invalidate(path)
	return nil
}
