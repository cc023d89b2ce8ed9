// Package ephemeralfs implements vfs.FileSystem over two in-process
// maps, with no backing store at all. It exists to serve a single
// clone operation's working tree and to act as the oracle PersistentFS
// is tested against (spec.md §3.4, §4.12).
package ephemeralfs

import (
	"context"
	"fmt"
	"strings"

	"gitvfs/internal/pathutil"
	"gitvfs/internal/vfs"
)

// errRootOp reports a precondition violation on the repository root,
// mirroring persistentfs's unexported helper of the same shape.
func errRootOp(verb string) error {
	return fmt.Errorf("cannot %s root", verb)
}

// EphemeralFS holds a clone's working tree entirely in memory.
// Directories are never stored explicitly: a path "exists as a
// directory" iff some key in either map has it as a proper prefix.
type EphemeralFS struct {
	files    map[string][]byte
	symlinks map[string]string
}

var _ vfs.FileSystem = (*EphemeralFS)(nil)

// New returns an empty EphemeralFS, ready for use without an Init call.
func New() *EphemeralFS {
	return &EphemeralFS{
		files:    make(map[string][]byte),
		symlinks: make(map[string]string),
	}
}

// Promises returns the receiver itself, mirroring PersistentFS's
// surface so callers can treat both as one vfs.FileSystem (spec.md
// §6.1).
func (e *EphemeralFS) Promises() vfs.FileSystem {
	return e
}

func (e *EphemeralFS) hasDirPrefix(path string) bool {
	prefix := path + "/"
	if path == "" {
		prefix = ""
	}
	for k := range e.files {
		if strings.HasPrefix(k, prefix) && k != path {
			return true
		}
	}
	for k := range e.symlinks {
		if strings.HasPrefix(k, prefix) && k != path {
			return true
		}
	}
	return false
}

// ReadFile returns path's bytes, or the UTF-8 decoding of them
// (spec.md §4.3, applied identically to EphemeralFS).
func (e *EphemeralFS) ReadFile(ctx context.Context, origPath string, opts vfs.ReadOptions) ([]byte, error) {
	path := pathutil.Normalize(origPath)

	data, ok := e.files[path]
	if !ok {
		if e.hasDirPrefix(path) {
			return nil, vfs.ErrIsDir("read", origPath)
		}
		return nil, vfs.ErrNoEnt("read", origPath)
	}
	return data, nil
}

// WriteFile stores data under path, overwriting any existing entry.
func (e *EphemeralFS) WriteFile(ctx context.Context, origPath string, data []byte) error {
	path := pathutil.Normalize(origPath)
	if path == "" {
		return errRootOp("write to")
	}
	if e.hasDirPrefix(path) {
		return vfs.ErrIsDir("write", origPath)
	}
	if data == nil {
		data = []byte{}
	}
	e.files[path] = data
	return nil
}

// Unlink removes path from both maps (spec.md §4.12).
func (e *EphemeralFS) Unlink(ctx context.Context, origPath string) error {
	path := pathutil.Normalize(origPath)

	_, inFiles := e.files[path]
	_, inSymlinks := e.symlinks[path]
	if !inFiles && !inSymlinks {
		if e.hasDirPrefix(path) {
			return vfs.ErrPerm("unlink", origPath)
		}
		return vfs.ErrNoEnt("unlink", origPath)
	}
	delete(e.files, path)
	delete(e.symlinks, path)
	return nil
}

// ReadDir synthesizes entries by scanning both maps for keys beginning
// with path + "/" and returning the distinct first segment of the
// remainder (spec.md §4.12).
func (e *EphemeralFS) ReadDir(ctx context.Context, origPath string) ([]string, error) {
	path := pathutil.Normalize(origPath)

	if path != "" {
		_, isFile := e.files[path]
		_, isSymlink := e.symlinks[path]
		if isFile || isSymlink {
			return nil, vfs.ErrNotDir("scandir", origPath)
		}
		if !e.hasDirPrefix(path) {
			return nil, vfs.ErrNoEnt("scandir", origPath)
		}
	}

	prefix := path + "/"
	if path == "" {
		prefix = ""
	}

	seen := make(map[string]bool)
	var names []string

	collect := func(key string) {
		if !strings.HasPrefix(key, prefix) || key == path {
			return
		}
		rest := key[len(prefix):]
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			rest = rest[:idx]
		}
		if rest == "" || seen[rest] {
			return
		}
		seen[rest] = true
		names = append(names, rest)
	}
	for k := range e.files {
		collect(k)
	}
	for k := range e.symlinks {
		collect(k)
	}
	return names, nil
}

// Mkdir is a no-op: EphemeralFS directories are implicit (spec.md
// §4.12).
func (e *EphemeralFS) Mkdir(ctx context.Context, origPath string) error {
	return nil
}

// Rmdir is a no-op.
func (e *EphemeralFS) Rmdir(ctx context.Context, origPath string) error {
	return nil
}

// Chmod is a no-op.
func (e *EphemeralFS) Chmod(ctx context.Context, origPath string, mode uint32) error {
	return nil
}

// Symlink records target under a dedicated map; unlike WriteFile it
// never creates a files-map entry (spec.md §4.12).
func (e *EphemeralFS) Symlink(ctx context.Context, target, origPath string) error {
	path := pathutil.Normalize(origPath)
	if path == "" {
		return errRootOp("write to")
	}
	e.symlinks[path] = target
	return nil
}

// ReadLink returns the recorded target for path.
func (e *EphemeralFS) ReadLink(ctx context.Context, origPath string) (string, error) {
	path := pathutil.Normalize(origPath)

	target, ok := e.symlinks[path]
	if !ok {
		return "", vfs.ErrNoEnt("readlink", origPath)
	}
	return target, nil
}

// Rename moves a file or symlink entry. A missing source is a silent
// no-op, deliberately asymmetric with PersistentFS.Rename's ENOENT
// (spec.md §9 Open Questions).
func (e *EphemeralFS) Rename(ctx context.Context, origOld, origNew string) error {
	oldPath := pathutil.Normalize(origOld)
	newPath := pathutil.Normalize(origNew)

	if data, ok := e.files[oldPath]; ok {
		delete(e.files, oldPath)
		e.files[newPath] = data
	}
	if target, ok := e.symlinks[oldPath]; ok {
		delete(e.symlinks, oldPath)
		e.symlinks[newPath] = target
	}
	return nil
}

// Stat follows symlinks by looking their target up in the files map
// and reports the regular-file stat of the result; a non-mapped path
// reports a directory stat iff it has any prefixed key (spec.md §4.12).
func (e *EphemeralFS) Stat(ctx context.Context, origPath string) (*vfs.Stats, error) {
	path := pathutil.Normalize(origPath)

	if data, ok := e.files[path]; ok {
		return &vfs.Stats{Mode: vfs.ModeRegular, Size: int64(len(data))}, nil
	}
	if target, ok := e.symlinks[path]; ok {
		size := int64(0)
		if data, ok := e.files[pathutil.Normalize(target)]; ok {
			size = int64(len(data))
		}
		return &vfs.Stats{Mode: vfs.ModeRegular, Size: size}, nil
	}
	if path == "" || e.hasDirPrefix(path) {
		return &vfs.Stats{Mode: vfs.ModeDir, Size: 0}, nil
	}
	return nil, vfs.ErrNoEnt("stat", origPath)
}

// Lstat is identical to Stat except it reports a symlink's own entry
// rather than following it (spec.md §4.12).
func (e *EphemeralFS) Lstat(ctx context.Context, origPath string) (*vfs.Stats, error) {
	path := pathutil.Normalize(origPath)

	if _, ok := e.symlinks[path]; ok {
		return &vfs.Stats{Mode: vfs.ModeSymlink, Size: 0}, nil
	}
	return e.Stat(ctx, origPath)
}

// Exists reports whether Stat would succeed.
func (e *EphemeralFS) Exists(ctx context.Context, origPath string) (bool, error) {
	_, err := e.Stat(ctx, origPath)
	if err == nil {
		return true, nil
	}
	if vfs.Is(err, vfs.ENOENT) {
		return false, nil
	}
	return false, err
}

// GetWorkingTreeFiles returns every file-map key that is not itself
// the ".git" tree, for a consumer assembling a checkout (spec.md
// §4.12).
func (e *EphemeralFS) GetWorkingTreeFiles() []string {
	var out []string
	for path := range e.files {
		if path == "" || path == ".git" || strings.HasPrefix(path, ".git/") {
			continue
		}
		out = append(out, path)
	}
	return out
}
