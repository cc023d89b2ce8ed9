package persistentfs_test

import (
	"context"
	"testing"

	"gitvfs/internal/ephemeralfs"
	"gitvfs/internal/vfs"
)

// TestSymlinkRoundTripAgreesWithOracle checks property P8 against both
// halves of the shared contract: PersistentFS and EphemeralFS diverge
// in how they store a symlink, but both must return the same target.
func TestSymlinkRoundTripAgreesWithOracle(t *testing.T) {
	p := openTestFS(t)
	defer closeTestFS(t, p)
	e := ephemeralfs.New()
	ctx := context.Background()

	for _, fsys := range []vfs.FileSystem{p, e} {
		if err := fsys.Symlink(ctx, "HEAD", "refs/head-link"); err != nil {
			t.Fatalf("Symlink failed: %v", err)
		}
		target, err := fsys.ReadLink(ctx, "refs/head-link")
		if err != nil {
			t.Fatalf("ReadLink failed: %v", err)
		}
		if target != "HEAD" {
			t.Errorf("ReadLink = %q, want HEAD", target)
		}
	}
}

// TestRenameAsymmetryOnMissingSource pins the deliberate divergence
// between the two filesystems (spec.md §9 Open Questions): PersistentFS
// raises ENOENT on a missing rename source; EphemeralFS is a silent
// no-op.
func TestRenameAsymmetryOnMissingSource(t *testing.T) {
	p := openTestFS(t)
	defer closeTestFS(t, p)
	e := ephemeralfs.New()
	ctx := context.Background()

	if err := e.Rename(ctx, "nope", "also-nope"); err != nil {
		t.Errorf("EphemeralFS.Rename(missing) = %v, want nil", err)
	}
	if err := p.Rename(ctx, "nope", "also-nope"); !vfs.Is(err, vfs.ENOENT) {
		t.Errorf("PersistentFS.Rename(missing) = %v, want ENOENT", err)
	}
}

// TestExistsAgreesAcrossBothFilesystems exercises exists() identically
// on both halves of the contract for a plain file, a directory, and a
// missing path.
func TestExistsAgreesAcrossBothFilesystems(t *testing.T) {
	p := openTestFS(t)
	defer closeTestFS(t, p)
	e := ephemeralfs.New()
	ctx := context.Background()

	for _, fsys := range []vfs.FileSystem{p, e} {
		if err := fsys.WriteFile(ctx, "dir/file", []byte("x")); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		for path, want := range map[string]bool{
			"dir/file": true,
			"dir":      true,
			"missing":  false,
		} {
			got, err := fsys.Exists(ctx, path)
			if err != nil {
				t.Fatalf("Exists(%s) failed: %v", path, err)
			}
			if got != want {
				t.Errorf("Exists(%s) = %v, want %v", path, got, want)
			}
		}
	}
}
