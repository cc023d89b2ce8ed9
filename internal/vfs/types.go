// Package vfs is the shared contract PersistentFS and EphemeralFS both
// satisfy: a POSIX-shaped file and directory API over a non-POSIX
// substrate, built for a single consumer — a git implementation
// library branching on Code to build indexes, resolve refs, and check
// out working trees.
package vfs

import "context"

// Mode constants mirror the ones a Node fs.Stats object reports. Modes
// are never enforced (spec.md Non-goals); they are constants a caller
// reads off Stat/Lstat results.
const (
	ModeDir     = 0o040755
	ModeRegular = 0o100644
	ModeSymlink = 0o120000
)

// Encoding selects how ReadFile decodes the concatenated chunk bytes.
type Encoding int

const (
	EncodingNone Encoding = iota
	EncodingUTF8
)

// ReadOptions controls ReadFile's return type.
type ReadOptions struct {
	Encoding Encoding
}

// Stats is the POSIX-shaped metadata returned by Stat/Lstat, modeled on
// a Node fs.Stats object: zeroed device/inode/ownership fields, a mode
// constant, and the three timestamp views collapsed onto one mtime.
type Stats struct {
	Mode    uint32
	Size    int64
	Dev     int64
	Ino     int64
	UID     int64
	GID     int64
	AtimeMs int64
	MtimeMs int64
	CtimeMs int64
}

func (s *Stats) IsFile() bool         { return s.Mode&0o170000 == ModeRegular&0o170000 }
func (s *Stats) IsDirectory() bool    { return s.Mode&0o170000 == ModeDir&0o170000 }
func (s *Stats) IsSymbolicLink() bool { return s.Mode&0o170000 == ModeSymlink&0o170000 }

// ObjectEntry is one (path, bytes) pair yielded by ExportGitObjects.
type ObjectEntry struct {
	Path string
	Data []byte
}

// LargestObject names the path with the most stored bytes, per
// StorageStats.
type LargestObject struct {
	Path  string
	Bytes int64
}

// StorageStats is the result of PersistentFS.StorageStats.
type StorageStats struct {
	TotalObjects  int64
	TotalBytes    int64
	LargestObject *LargestObject
}

// FileSystem is the capability set PersistentFS and EphemeralFS both
// implement, so a consumer binds to one polymorphic interface instead
// of two concrete types (spec.md §9, "Dynamic dispatch").
type FileSystem interface {
	ReadFile(ctx context.Context, path string, opts ReadOptions) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte) error
	Unlink(ctx context.Context, path string) error
	ReadDir(ctx context.Context, path string) ([]string, error)
	Mkdir(ctx context.Context, path string) error
	Rmdir(ctx context.Context, path string) error
	Stat(ctx context.Context, path string) (*Stats, error)
	Lstat(ctx context.Context, path string) (*Stats, error)
	Symlink(ctx context.Context, target, path string) error
	ReadLink(ctx context.Context, path string) (string, error)
	Chmod(ctx context.Context, path string, mode uint32) error
	Rename(ctx context.Context, oldPath, newPath string) error
	Exists(ctx context.Context, path string) (bool, error)

	// Promises aliases to the receiver itself: the consuming git
	// library requires the synchronous and "promises" surfaces of a
	// filesystem to be the same object (spec.md §6.1, §9).
	Promises() FileSystem
}
