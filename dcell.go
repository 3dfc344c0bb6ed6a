// Package dcell provides a single-owner interior-mutability cell whose
// aliasing discipline is checked at runtime in the default build and
// assumed to hold in builds made with the dcell_unchecked tag.
//
// The two profiles expose the same API and behave identically for correct
// callers. They differ only in what a contract violation does:
//
//   - Checked (default): the violation panics immediately with a typed
//     error (*BorrowError or *CheckError) carrying the call site of the
//     conflicting borrow. The cell's state is left unchanged, so a test
//     harness can recover and continue.
//   - Unchecked (-tags dcell_unchecked): no bookkeeping exists at all,
//     not merely skipped checks. A violation is undefined behavior.
//
// A cell is single-goroutine-affine while it has outstanding guards. It
// may move to another goroutine only while unborrowed, and must never be
// shared by reference across goroutines without external synchronization.
//
// The companion helpers (Unwrap, Must, At, Unreachable) follow the same
// two-profile contract and report through the same mechanism.
package dcell

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// callerSite returns "file.go:line" for the caller skip frames above the
// caller of callerSite. It feeds violation messages in the checked
// profile, standing in for the source crate's caller tracking.
func callerSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
