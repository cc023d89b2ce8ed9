package ephemeralfs_test

import (
	"context"
	"testing"

	"gitvfs/internal/ephemeralfs"
	"gitvfs/internal/vfs"
)

func TestWriteReadRoundTrip(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.WriteFile(ctx, "a/b/c.txt", []byte("hello")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := e.ReadFile(ctx, "a/b/c.txt", vfs.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("ReadFile = %q, want hello", data)
	}

	for _, dir := range []string{"a", "a/b", ""} {
		exists, err := e.Exists(ctx, dir)
		if err != nil {
			t.Fatalf("Exists(%s) failed: %v", dir, err)
		}
		if !exists {
			t.Errorf("Exists(%s) = false, want true (implicit directory)", dir)
		}
	}
}

func TestReadMissingIsENOENT(t *testing.T) {
	e := ephemeralfs.New()
	_, err := e.ReadFile(context.Background(), "nope", vfs.ReadOptions{})
	if !vfs.Is(err, vfs.ENOENT) {
		t.Errorf("ReadFile(nope) err = %v, want ENOENT", err)
	}
}

func TestSymlinkDoesNotCreateFileEntry(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.Symlink(ctx, "HEAD", "refs/head-link"); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	target, err := e.ReadLink(ctx, "refs/head-link")
	if err != nil {
		t.Fatalf("ReadLink failed: %v", err)
	}
	if target != "HEAD" {
		t.Errorf("ReadLink = %q, want HEAD", target)
	}

	lstat, err := e.Lstat(ctx, "refs/head-link")
	if err != nil {
		t.Fatalf("Lstat failed: %v", err)
	}
	if !lstat.IsSymbolicLink() || lstat.Size != 0 {
		t.Errorf("Lstat(link) = %+v, want symlink mode with size 0", lstat)
	}
}

func TestStatFollowsSymlink(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.WriteFile(ctx, "HEAD", []byte("ref: refs/heads/main\n")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := e.Symlink(ctx, "HEAD", "link"); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}

	stats, err := e.Stat(ctx, "link")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !stats.IsFile() || stats.Size != int64(len("ref: refs/heads/main\n")) {
		t.Errorf("Stat(link) = %+v, want regular file sized like HEAD's target", stats)
	}
}

func TestStatFollowsDanglingSymlink(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.Symlink(ctx, "missing-target", "link"); err != nil {
		t.Fatalf("Symlink failed: %v", err)
	}
	stats, err := e.Stat(ctx, "link")
	if err != nil {
		t.Fatalf("Stat(dangling link) failed: %v", err)
	}
	if stats.Size != 0 {
		t.Errorf("Stat(dangling link).Size = %d, want 0", stats.Size)
	}
}

func TestReadDirSynthesizesFromPrefix(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	for _, p := range []string{"a/x", "a/y", "a/b/z"} {
		if err := e.WriteFile(ctx, p, []byte("1")); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", p, err)
		}
	}

	names, err := e.ReadDir(ctx, "a")
	if err != nil {
		t.Fatalf("ReadDir(a) failed: %v", err)
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["x"] || !seen["y"] || !seen["b"] {
		t.Errorf("ReadDir(a) = %v, want x, y, b", names)
	}
	if len(names) != 3 {
		t.Errorf("ReadDir(a) returned %d entries, want distinct-segment count 3", len(names))
	}
}

func TestRenameMissingSourceIsSilentNoOp(t *testing.T) {
	e := ephemeralfs.New()
	if err := e.Rename(context.Background(), "nope", "also-nope"); err != nil {
		t.Errorf("Rename(nope, ...) err = %v, want nil (silent no-op)", err)
	}
}

func TestRenameMovesFile(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.WriteFile(ctx, "old", []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := e.Rename(ctx, "old", "new"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if exists, _ := e.Exists(ctx, "old"); exists {
		t.Error("Exists(old) after rename = true, want false")
	}
	data, err := e.ReadFile(ctx, "new", vfs.ReadOptions{})
	if err != nil {
		t.Fatalf("ReadFile(new) failed: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("ReadFile(new) = %q, want data", data)
	}
}

func TestGetWorkingTreeFilesExcludesGit(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.WriteFile(ctx, ".git/HEAD", []byte("ref")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := e.WriteFile(ctx, "README.md", []byte("hi")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	files := e.GetWorkingTreeFiles()
	if len(files) != 1 || files[0] != "README.md" {
		t.Errorf("GetWorkingTreeFiles = %v, want [README.md]", files)
	}
}

func TestMkdirRmdirChmodAreNoOps(t *testing.T) {
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.Mkdir(ctx, "anything"); err != nil {
		t.Errorf("Mkdir = %v, want nil", err)
	}
	if err := e.Rmdir(ctx, "anything"); err != nil {
		t.Errorf("Rmdir = %v, want nil", err)
	}
	if err := e.Chmod(ctx, "anything", 0o755); err != nil {
		t.Errorf("Chmod = %v, want nil", err)
	}
}
