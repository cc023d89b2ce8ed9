package fuseadapter

import (
	"syscall"
	"testing"

	"gitvfs/internal/vfs"
)

func TestToErrno(t *testing.T) {
	cases := []struct {
		err  error
		want syscall.Errno
	}{
		{nil, 0},
		{vfs.ErrNoEnt("stat", "x"), syscall.ENOENT},
		{vfs.ErrIsDir("read", "x"), syscall.EISDIR},
		{vfs.ErrNotDir("scandir", "x"), syscall.ENOTDIR},
		{vfs.ErrExist("mkdir", "x"), syscall.EEXIST},
		{vfs.ErrPerm("unlink", "x"), syscall.EPERM},
		{vfs.ErrNotEmpty("rmdir", "x"), syscall.ENOTEMPTY},
	}
	for _, c := range cases {
		if got := toErrno(c.err); got != c.want {
			t.Errorf("toErrno(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestToErrnoUnrecognizedIsEIO(t *testing.T) {
	if got := toErrno(errPlain{}); got != syscall.EIO {
		t.Errorf("toErrno(plain error) = %v, want EIO", got)
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "boom" }
