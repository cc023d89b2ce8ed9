// Package persistentfs implements vfs.FileSystem over a single SQLite
// table, translating POSIX-shaped calls into chunked row operations
// (spec.md §4.2–§4.11). It is the process-durable half of the
// contract; internal/ephemeralfs is the in-memory half used only for
// the duration of a clone.
package persistentfs

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"

	"gitvfs/internal/store"
	"gitvfs/internal/vfs"
)

const cacheSize = 10000

// metaEntry is the cached shape of a chunk-0 row, enough to answer
// Stat/Lstat/Exists without a round trip. It mirrors the teacher's
// AgentFS path-resolution cache (pkg/overlay/agentfs.go), adapted from
// caching inode numbers to caching chunk-0 metadata directly since
// this schema has no separate inode table.
type metaEntry struct {
	parentPath string
	isDir      bool
	size       int64
	mtime      int64
}

// PersistentFS is the relational-storage-backed filesystem. One
// instance corresponds to exactly one repository (spec.md §1).
type PersistentFS struct {
	store *store.Store
	cache *lru.Cache[string, metaEntry]
}

var _ vfs.FileSystem = (*PersistentFS)(nil)

// Open opens (or creates) the SQLite-backed store at cfg.Path without
// yet running schema migration; call Init before any other operation.
func Open(cfg store.Config) (*PersistentFS, error) {
	st, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[string, metaEntry](cacheSize)
	if err != nil {
		st.Close()
		return nil, err
	}

	return &PersistentFS{store: st, cache: cache}, nil
}

// Init detects the on-disk schema version (absent, v1, v2) and
// migrates v1 to v2 in place if needed (spec.md §4.2). It must be
// called once before any other method.
func (p *PersistentFS) Init(ctx context.Context) error {
	if err := p.store.Init(ctx); err != nil {
		return fmt.Errorf("gitvfs: init: %w", err)
	}
	p.cache.Purge()
	return nil
}

// Close releases the underlying database connection.
func (p *PersistentFS) Close() error {
	return p.store.Close()
}

// Promises returns the receiver itself: the consuming git library
// expects its synchronous and promise-based surfaces to be the same
// object (spec.md §6.1).
func (p *PersistentFS) Promises() vfs.FileSystem {
	return p
}

func (p *PersistentFS) invalidate(path string) {
	p.cache.Remove(path)
}

// chunkZero fetches chunk 0 of path, preferring the cache. A cache hit
// only ever reflects a row this process itself wrote or observed; any
// mutation of path invalidates the entry before returning.
func (p *PersistentFS) chunkZero(ctx context.Context, path string) (*store.ChunkZero, bool, error) {
	if cached, ok := p.cache.Get(path); ok {
		return &store.ChunkZero{
			ParentPath: cached.parentPath,
			IsDir:      cached.isDir,
			Size:       cached.size,
			Mtime:      cached.mtime,
		}, true, nil
	}

	cz, err := p.store.GetChunkZero(ctx, path)
	if err == store.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	resolveSize(cz)

	p.cache.Add(path, metaEntry{
		parentPath: cz.ParentPath,
		isDir:      cz.IsDir,
		size:       cz.Size,
		mtime:      cz.Mtime,
	})
	return cz, true, nil
}

// resolveSize fills in cz.Size when the recorded size is 0 and the row
// carries data, per the lazy-size path spec.md §4.2 sets up (v1→v2
// migration resets size to 0) and §4.3 resolves (spec.md §4.3 "stat").
func resolveSize(cz *store.ChunkZero) {
	if cz.IsDir || cz.Size != 0 || len(cz.Data) == 0 {
		return
	}
	if cz.IsText {
		cz.Size = store.LegacyDecodedLen(cz.Data)
	} else {
		cz.Size = int64(len(cz.Data))
	}
}

func logf(format string, args ...any) {
	log.Debugf("[persistentfs] "+format, args...)
}
