package persistentfs

import (
	"context"

	"gitvfs/internal/pathutil"
	"gitvfs/internal/store"
	"gitvfs/internal/vfs"
)

// Stat returns metadata for path. PersistentFS never models the
// symlink bit (spec.md §4.8): a symlink stored here reports as a
// regular file, so Lstat is identical to Stat.
func (p *PersistentFS) Stat(ctx context.Context, origPath string) (*vfs.Stats, error) {
	path := pathutil.Normalize(origPath)

	cz, found, err := p.chunkZero(ctx, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vfs.ErrNoEnt("stat", origPath)
	}

	return chunkZeroToStats(cz), nil
}

// Lstat is identical to Stat (spec.md §4.3: "lstat(path) == stat(path)").
func (p *PersistentFS) Lstat(ctx context.Context, origPath string) (*vfs.Stats, error) {
	return p.Stat(ctx, origPath)
}

// Exists reports whether Stat would succeed. Non-ENOENT errors
// propagate unchanged (spec.md §4.3).
func (p *PersistentFS) Exists(ctx context.Context, origPath string) (bool, error) {
	_, err := p.Stat(ctx, origPath)
	if err == nil {
		return true, nil
	}
	if vfs.Is(err, vfs.ENOENT) {
		return false, nil
	}
	return false, err
}

// Chmod is a no-op: permissions are reported as constants, never
// enforced (spec.md §4.9, §1 Non-goals).
func (p *PersistentFS) Chmod(ctx context.Context, origPath string, mode uint32) error {
	return nil
}

// chunkZeroToStats renders a resolved chunk-0 row as the POSIX-shaped
// Stats object spec.md §4.3 describes: zeroed dev/ino/uid/gid, the
// mode constant for the entity's type, and mtime reflected onto both
// ctime and atime views.
func chunkZeroToStats(cz *store.ChunkZero) *vfs.Stats {
	mode := uint32(vfs.ModeRegular)
	size := cz.Size
	if cz.IsDir {
		mode = vfs.ModeDir
		size = 0
	}
	return &vfs.Stats{
		Mode:    mode,
		Size:    size,
		AtimeMs: cz.Mtime,
		MtimeMs: cz.Mtime,
		CtimeMs: cz.Mtime,
	}
}
