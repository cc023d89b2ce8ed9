package persistentfs

import (
	"context"
	"database/sql"

	"gitvfs/internal/pathutil"
	"gitvfs/internal/store"
	"gitvfs/internal/vfs"
)

// ReadFile concatenates every chunk of path in order, transparently
// decoding legacy base64 TEXT chunks alongside real BLOB chunks
// (spec.md §4.3).
func (p *PersistentFS) ReadFile(ctx context.Context, origPath string, opts vfs.ReadOptions) ([]byte, error) {
	path := pathutil.Normalize(origPath)

	cz, found, err := p.chunkZero(ctx, path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, vfs.ErrNoEnt("read", origPath)
	}
	if cz.IsDir {
		return nil, vfs.ErrIsDir("read", origPath)
	}

	chunks, err := p.store.ReadChunks(ctx, path)
	if err != nil {
		return nil, err
	}

	var out []byte
	for _, c := range chunks {
		out = append(out, store.DecodeChunk(c.Data, c.IsText)...)
	}
	return out, nil
}

// WriteFile replaces path's entire content with data, splitting it
// into store.ChunkSize-bounded chunks and creating any missing
// ancestor directories along the way (spec.md §4.4, invariant I5).
func (p *PersistentFS) WriteFile(ctx context.Context, origPath string, data []byte) error {
	path := pathutil.Normalize(origPath)
	if path == "" {
		return errRootOp("write to")
	}

	cz, found, err := p.chunkZero(ctx, path)
	if err != nil {
		return err
	}
	if found && cz.IsDir {
		return vfs.ErrIsDir("write", origPath)
	}

	parts := pathutil.Split(path)
	now := nowMillis()

	err = p.store.WithTx(ctx, func(tx *sql.Tx) error {
		for i := 1; i < len(parts); i++ {
			dirPath := pathutil.Join(parts[:i])
			parentPath := pathutil.Join(parts[:i-1])
			if err := p.store.InsertDirRow(ctx, tx, dirPath, parentPath, now); err != nil {
				return err
			}
		}

		if err := p.store.DeleteAllChunks(ctx, tx, path); err != nil {
			return err
		}

		size := int64(len(data))
		chunkCount := size / store.ChunkSize
		if size%store.ChunkSize != 0 || size == 0 {
			chunkCount++
		}

		parentPath := pathutil.Join(parts[:len(parts)-1])

		for i := int64(0); i < chunkCount; i++ {
			start := i * store.ChunkSize
			end := start + store.ChunkSize
			if end > size {
				end = size
			}

			chunkParent := ""
			chunkSize := int64(0)
			if i == 0 {
				chunkParent = parentPath
				chunkSize = size
			}

			slice := data[start:end]
			if slice == nil {
				// A BLOB column must store a real empty blob, not
				// NULL, for an empty file's chunk 0 (invariant I3).
				slice = []byte{}
			}
			if err := p.store.InsertFileChunk(ctx, tx, path, i, chunkParent, slice, chunkSize, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	p.invalidate(path)
	for i := 1; i < len(parts); i++ {
		p.invalidate(pathutil.Join(parts[:i]))
	}
	logf("wrote %s (%d bytes)", path, len(data))
	return nil
}
