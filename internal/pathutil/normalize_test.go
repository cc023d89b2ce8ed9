package pathutil_test

import (
	"testing"

	"gitvfs/internal/pathutil"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"/", ""},
		{".", ""},
		{"./", ""},
		{"./foo", "foo"},
		{"/foo", "foo"},
		{"/foo/", "foo"},
		{"foo/bar", "foo/bar"},
		{"//foo//bar", "foo//bar"},
		{"foo/bar/", "foo/bar"},
	}
	for _, c := range cases {
		if got := pathutil.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "/", "./foo/bar/", "foo", "/foo/bar/baz/"}
	for _, in := range inputs {
		once := pathutil.Normalize(in)
		twice := pathutil.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestParentAndBase(t *testing.T) {
	if got := pathutil.Parent("a/b/c"); got != "a/b" {
		t.Errorf("Parent(a/b/c) = %q, want a/b", got)
	}
	if got := pathutil.Parent("a"); got != "" {
		t.Errorf("Parent(a) = %q, want \"\"", got)
	}
	if got := pathutil.Base("a/b/c"); got != "c" {
		t.Errorf("Base(a/b/c) = %q, want c", got)
	}
	if got := pathutil.Base("a"); got != "a" {
		t.Errorf("Base(a) = %q, want a", got)
	}
}

func TestSplitJoin(t *testing.T) {
	if got := pathutil.Split(""); got != nil {
		t.Errorf("Split(\"\") = %v, want nil", got)
	}
	parts := pathutil.Split("a/b/c")
	want := []string{"a", "b", "c"}
	if len(parts) != len(want) {
		t.Fatalf("Split(a/b/c) = %v, want %v", parts, want)
	}
	for i := range parts {
		if parts[i] != want[i] {
			t.Errorf("Split(a/b/c)[%d] = %q, want %q", i, parts[i], want[i])
		}
	}
	if got := pathutil.Join(parts); got != "a/b/c" {
		t.Errorf("Join(%v) = %q, want a/b/c", parts, got)
	}
	if got := pathutil.Depth("a/b/c"); got != 3 {
		t.Errorf("Depth(a/b/c) = %d, want 3", got)
	}
	if got := pathutil.Depth(""); got != 0 {
		t.Errorf("Depth(\"\") = %d, want 0", got)
	}
}
