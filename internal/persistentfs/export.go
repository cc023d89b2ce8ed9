package persistentfs

import (
	"context"

	"gitvfs/internal/vfs"
)

// ExportGitObjects yields every stored file under ".git/" as a (path,
// concatenated bytes) pair, legacy base64 rows decoded transparently alongside BLOB
// rows, ordered by path then chunk_index so chunked files reassemble
// correctly (spec.md §9, "Export ordering").
func (p *PersistentFS) ExportGitObjects(ctx context.Context) ([]vfs.ObjectEntry, error) {
	objs, err := p.store.ExportObjects(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]vfs.ObjectEntry, 0, len(objs))
	for _, o := range objs {
		out = append(out, vfs.ObjectEntry{Path: o.Path, Data: o.Data})
	}
	return out, nil
}
