//go:build !dcell_unchecked

package dcell

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dcell-go/dcell/internal/goid"
)

// borrowState tracks the outstanding claims on one cell.
//
// state encoding:
//   - 0:  unborrowed
//   - n>0: n live shared guards
//   - -1: one exclusive claim outstanding
//
// muts counts the live exclusive sub-guards while state == -1. A plain
// BorrowMut sets it to 1; MapSplitMut raises it, one release lowers it,
// and the cell returns to unborrowed only when it reaches 0 again. This
// keeps state itself inside {-1, 0, n>0}.
//
// owner and site are diagnostics: the goroutine that opened the current
// borrow set and the call site that opened it. Both reset when the set
// drains, so a quiescent cell may legally move between goroutines.
type borrowState struct {
	state int32
	muts  int32
	owner int64
	site  string
}

// Cell is a mutable memory location with dynamically checked borrow
// rules. The zero value is an unborrowed cell around T's zero value.
type Cell[T any] struct {
	_ noCopy
	borrowState
	value T
}

func (b *borrowState) acquireShared(site, msg string) {
	switch {
	case b.state == -1:
		panic(borrowErr("already mutably borrowed", b.site, msg))
	case b.state == 0:
		b.owner = goid.ID()
		b.site = site
	case b.owner != goid.ID():
		panic(borrowErr("borrowed by another goroutine", b.site, msg))
	}
	b.state++
}

func (b *borrowState) acquireExclusive(site, msg string) {
	switch {
	case b.state == -1:
		panic(borrowErr("already mutably borrowed", b.site, msg))
	case b.state > 0:
		panic(borrowErr("already borrowed", b.site, msg))
	}
	b.state = -1
	b.muts = 1
	b.owner = goid.ID()
	b.site = site
}

func (b *borrowState) releaseShared() {
	if b.state <= 0 {
		panic(borrowErr("release of a guard the cell no longer tracks", b.site, ""))
	}
	b.assertOwner()
	b.state--
	if b.state == 0 {
		b.owner, b.site = 0, ""
	}
}

func (b *borrowState) releaseExclusive() {
	if b.state != -1 {
		panic(borrowErr("release of a guard the cell no longer tracks", b.site, ""))
	}
	b.assertOwner()
	b.muts--
	if b.muts == 0 {
		b.state = 0
		b.owner, b.site = 0, ""
	}
}

// assertOwner reports guard traffic from a goroutine other than the one
// that opened the current borrow set. Detection is best effort: under
// genuinely concurrent misuse the fields themselves race.
func (b *borrowState) assertOwner() {
	if b.owner != goid.ID() {
		panic(borrowErr("guard used from another goroutine", b.site, ""))
	}
}

// Borrow immutably borrows the wrapped value. Multiple shared borrows
// may be outstanding at once.
//
// Panics with *BorrowError if the value is mutably borrowed. Under the
// unchecked profile that condition is undefined behavior instead.
func (c *Cell[T]) Borrow() Ref[T] {
	c.acquireShared(callerSite(1), "")
	return Ref[T]{v: &c.value, b: &c.borrowState}
}

// BorrowExpect is Borrow with a caller-supplied message attached to the
// violation report.
func (c *Cell[T]) BorrowExpect(msg string) Ref[T] {
	c.acquireShared(callerSite(1), msg)
	return Ref[T]{v: &c.value, b: &c.borrowState}
}

// BorrowMut mutably borrows the wrapped value. The value cannot be
// borrowed again until the returned guard is released.
//
// Panics with *BorrowError if the value is already borrowed, shared or
// mutably. Under the unchecked profile that condition is undefined
// behavior instead.
func (c *Cell[T]) BorrowMut() RefMut[T] {
	c.acquireExclusive(callerSite(1), "")
	return RefMut[T]{v: &c.value, b: &c.borrowState}
}

// BorrowMutExpect is BorrowMut with a caller-supplied message attached
// to the violation report.
func (c *Cell[T]) BorrowMutExpect(msg string) RefMut[T] {
	c.acquireExclusive(callerSite(1), msg)
	return RefMut[T]{v: &c.value, b: &c.borrowState}
}

// runSealed runs f and terminates the process if f panics. It seals the
// closure of ReplaceWith: unwinding out of an in-place read-then-write
// of the cell's memory would leave the value torn, so the panic must not
// escape.
func runSealed(f func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "dcell: panic in replace closure: %v\n%s", r, debug.Stack())
			os.Exit(2)
		}
	}()
	f()
}
