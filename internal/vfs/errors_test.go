package vfs_test

import (
	"testing"

	"gitvfs/internal/vfs"
)

func TestErrorCodesAndErrno(t *testing.T) {
	cases := []struct {
		err   error
		code  vfs.Code
		errno int
	}{
		{vfs.ErrNoEnt("stat", "x"), vfs.ENOENT, -2},
		{vfs.ErrPerm("unlink", "x"), vfs.EPERM, -1},
		{vfs.ErrNotDir("scandir", "x"), vfs.ENOTDIR, -20},
		{vfs.ErrIsDir("read", "x"), vfs.EISDIR, -21},
		{vfs.ErrExist("mkdir", "x"), vfs.EEXIST, -17},
		{vfs.ErrNotEmpty("rmdir", "x"), vfs.ENOTEMPTY, -39},
	}
	for _, c := range cases {
		code, ok := vfs.CodeOf(c.err)
		if !ok {
			t.Fatalf("CodeOf(%v) found nothing", c.err)
		}
		if code != c.code {
			t.Errorf("CodeOf(%v) = %s, want %s", c.err, code, c.code)
		}
		fsErr, ok := c.err.(*vfs.Error)
		if !ok {
			t.Fatalf("err is not *vfs.Error: %v", c.err)
		}
		if fsErr.Errno != c.errno {
			t.Errorf("Errno for %s = %d, want %d", c.code, fsErr.Errno, c.errno)
		}
	}
}

func TestIs(t *testing.T) {
	err := vfs.ErrNoEnt("stat", "missing")
	if !vfs.Is(err, vfs.ENOENT) {
		t.Error("Is(err, ENOENT) = false, want true")
	}
	if vfs.Is(err, vfs.EEXIST) {
		t.Error("Is(err, EEXIST) = true, want false")
	}
	if vfs.Is(nil, vfs.ENOENT) {
		t.Error("Is(nil, ENOENT) = true, want false")
	}
}
