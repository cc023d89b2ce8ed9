package fuseadapter

import (
	"syscall"

	"gitvfs/internal/vfs"
)

// toErrno maps a vfs error to the syscall.Errno FUSE expects. Anything
// that isn't a recognized vfs.Error becomes EIO, the same fallback the
// teacher's overlay adapter uses for errors it doesn't recognize.
func toErrno(err error) syscall.Errno {
	if err == nil {
		return 0
	}
	code, ok := vfs.CodeOf(err)
	if !ok {
		return syscall.EIO
	}
	switch code {
	case vfs.ENOENT:
		return syscall.ENOENT
	case vfs.EISDIR:
		return syscall.EISDIR
	case vfs.ENOTDIR:
		return syscall.ENOTDIR
	case vfs.EEXIST:
		return syscall.EEXIST
	case vfs.EPERM:
		return syscall.EPERM
	case vfs.ENOTEMPTY:
		return syscall.ENOTEMPTY
	default:
		return syscall.EIO
	}
}
