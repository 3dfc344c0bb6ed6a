//go:build dcell_unchecked

package dcell

// Cell is a mutable memory location whose borrow rules the caller is
// trusted to uphold. This profile carries no bookkeeping at all; every
// guard operation compiles down to pointer plumbing, and a violated
// aliasing rule is undefined behavior. The zero value is a cell around
// T's zero value.
type Cell[T any] struct {
	_     noCopy
	value T
}

// Borrow immutably borrows the wrapped value.
//
// The caller must ensure the value is not mutably borrowed; this
// profile does not check.
func (c *Cell[T]) Borrow() Ref[T] {
	return Ref[T]{v: &c.value}
}

// BorrowExpect is Borrow; the message is unused in this profile.
func (c *Cell[T]) BorrowExpect(msg string) Ref[T] {
	return Ref[T]{v: &c.value}
}

// BorrowMut mutably borrows the wrapped value.
//
// The caller must ensure the value is not borrowed at all; this profile
// does not check.
func (c *Cell[T]) BorrowMut() RefMut[T] {
	return RefMut[T]{v: &c.value}
}

// BorrowMutExpect is BorrowMut; the message is unused in this profile.
func (c *Cell[T]) BorrowMutExpect(msg string) RefMut[T] {
	return RefMut[T]{v: &c.value}
}

func runSealed(f func()) {
	f()
}
