package fuseadapter

import (
	"fmt"
	"time"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"

	"gitvfs/internal/vfs"
)

// Mounter manages a debug FUSE mount's lifecycle, grounded on the
// teacher's OverlayMounter (pkg/fs/mount.go).
type Mounter struct {
	server *fuse.Server
	path   string
}

// Mount exposes fsys's root at path, for inspecting a repository's
// contents with ordinary filesystem tools rather than the gitvfs CLI.
func Mount(path string, fsys vfs.FileSystem) (*Mounter, error) {
	root := &Node{path: "", fsys: fsys}

	timeout := time.Second
	opts := &fs.Options{
		MountOptions: fuse.MountOptions{
			AllowOther: false,
			Debug:      false,
			FsName:     "gitvfs",
			Name:       "gitvfs",
		},
		AttrTimeout:  &timeout,
		EntryTimeout: &timeout,
	}

	server, err := fs.Mount(path, root, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to mount gitvfs: %w", err)
	}

	return &Mounter{server: server, path: path}, nil
}

// Unmount cleanly unmounts the filesystem.
func (m *Mounter) Unmount() error {
	return m.server.Unmount()
}

// Wait blocks until the filesystem is unmounted.
func (m *Mounter) Wait() {
	m.server.Wait()
}

// Serve starts serving FUSE requests in the background.
func (m *Mounter) Serve() {
	go m.server.Serve()
}

// Path returns the mount path.
func (m *Mounter) Path() string {
	return m.path
}
