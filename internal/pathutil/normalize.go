// Package pathutil normalizes filesystem paths into the canonical form
// every other package in this module assumes: no leading separator, no
// "./" prefix, no trailing separator, and the empty string for the
// repository root.
package pathutil

import "strings"

// Normalize strips leading separators and a leading "./" from p, and a
// trailing separator from directory-style input. It is idempotent:
// Normalize(Normalize(p)) == Normalize(p).
func Normalize(p string) string {
	for strings.HasPrefix(p, "/") {
		p = p[1:]
	}

	if p == "." || p == "./" {
		return ""
	}
	if strings.HasPrefix(p, "./") {
		p = p[2:]
	}

	for strings.HasPrefix(p, "/") {
		p = p[1:]
	}

	if p != "" {
		p = strings.TrimSuffix(p, "/")
	}

	return p
}

// Parent returns the canonical path of p's containing directory. The
// root's parent is the root itself (the empty string).
func Parent(p string) string {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return ""
	}
	return p[:idx]
}

// Base returns the last path segment of p (the basename).
func Base(p string) string {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return p
	}
	return p[idx+1:]
}

// Split breaks a canonical path into its segments. The root splits to
// an empty slice.
func Split(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Join rebuilds a canonical path from segments, the inverse of Split.
func Join(parts []string) string {
	return strings.Join(parts, "/")
}

// Depth returns the number of segments in p (0 for the root).
func Depth(p string) int {
	return len(Split(p))
}
