package persistentfs

import "fmt"

// errRootOp reports a precondition violation on the repository root.
// Per spec.md §7, these carry no Code — ordinary callers are not
// expected to branch on them the way they branch on vfs.Error.
func errRootOp(verb string) error {
	return fmt.Errorf("cannot %s root", verb)
}
