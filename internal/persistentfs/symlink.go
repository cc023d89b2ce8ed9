package persistentfs

import (
	"context"

	"gitvfs/internal/vfs"
)

// Symlink stores target as path's file contents. PersistentFS has no
// symlink bit of its own; it models a link as an ordinary file whose
// body happens to be a target string (spec.md §4.8).
func (p *PersistentFS) Symlink(ctx context.Context, target, path string) error {
	return p.WriteFile(ctx, path, []byte(target))
}

// ReadLink reads path back as UTF-8 text.
func (p *PersistentFS) ReadLink(ctx context.Context, path string) (string, error) {
	data, err := p.ReadFile(ctx, path, vfs.ReadOptions{Encoding: vfs.EncodingUTF8})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
