package fuseadapter

import (
	"context"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"gitvfs/internal/vfs"
)

// FileHandle buffers a whole file in memory between Open and Release,
// since vfs.FileSystem exposes only whole-file ReadFile/WriteFile.
type FileHandle struct {
	path  string
	fsys  vfs.FileSystem
	data  []byte
	dirty bool
}

var (
	_ fs.FileReader    = (*FileHandle)(nil)
	_ fs.FileWriter    = (*FileHandle)(nil)
	_ fs.FileFlusher   = (*FileHandle)(nil)
	_ fs.FileReleaser  = (*FileHandle)(nil)
	_ fs.FileGetattrer = (*FileHandle)(nil)
)

// Read serves dest from the buffered file content.
func (h *FileHandle) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	if off >= int64(len(h.data)) {
		return fuse.ReadResultData(nil), 0
	}
	end := off + int64(len(dest))
	if end > int64(len(h.data)) {
		end = int64(len(h.data))
	}
	return fuse.ReadResultData(h.data[off:end]), 0
}

// Write extends the buffer as needed and marks it dirty for Flush.
func (h *FileHandle) Write(ctx context.Context, data []byte, off int64) (uint32, syscall.Errno) {
	end := off + int64(len(data))
	if end > int64(len(h.data)) {
		grown := make([]byte, end)
		copy(grown, h.data)
		h.data = grown
	}
	copy(h.data[off:end], data)
	h.dirty = true
	return uint32(len(data)), 0
}

// Flush writes the buffered content back through vfs.FileSystem if it
// changed since Open.
func (h *FileHandle) Flush(ctx context.Context) syscall.Errno {
	if !h.dirty {
		return 0
	}
	if err := h.fsys.WriteFile(ctx, h.path, h.data); err != nil {
		return toErrno(err)
	}
	h.dirty = false
	return 0
}

// Release flushes any remaining buffered writes.
func (h *FileHandle) Release(ctx context.Context) syscall.Errno {
	return h.Flush(ctx)
}

// Getattr reports the buffered file's current size.
func (h *FileHandle) Getattr(ctx context.Context, out *fuse.AttrOut) syscall.Errno {
	stats, err := h.fsys.Lstat(ctx, h.path)
	if err != nil {
		return toErrno(err)
	}
	fillAttr(stats, &out.Attr)
	out.Attr.Size = uint64(len(h.data))
	return 0
}
