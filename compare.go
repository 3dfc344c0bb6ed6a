package dcell

import "cmp"

// Comparisons between cells forward to the wrapped values under shared
// guards acquired internally, so each fails exactly as Borrow does
// while either cell is mutably borrowed. They are plain functions, not
// methods wired into any interface, because an operation that can fail
// should not hide behind syntax callers expect to be infallible.

// Eq reports whether the wrapped values of a and b are equal.
func Eq[T comparable](a, b *Cell[T]) bool {
	ra := a.Borrow()
	defer ra.Release()
	rb := b.Borrow()
	defer rb.Release()
	return *ra.Get() == *rb.Get()
}

// EqExpect is Eq with a caller-supplied message attached to the
// violation report.
func EqExpect[T comparable](a, b *Cell[T], msg string) bool {
	ra := a.BorrowExpect(msg)
	defer ra.Release()
	rb := b.BorrowExpect(msg)
	defer rb.Release()
	return *ra.Get() == *rb.Get()
}

// Compare orders the wrapped values of a and b: -1 if a's value is
// smaller, 0 if equal, +1 if greater.
func Compare[T cmp.Ordered](a, b *Cell[T]) int {
	ra := a.Borrow()
	defer ra.Release()
	rb := b.Borrow()
	defer rb.Release()
	return cmp.Compare(*ra.Get(), *rb.Get())
}

// CompareExpect is Compare with a caller-supplied message attached to
// the violation report.
func CompareExpect[T cmp.Ordered](a, b *Cell[T], msg string) int {
	ra := a.BorrowExpect(msg)
	defer ra.Release()
	rb := b.BorrowExpect(msg)
	defer rb.Release()
	return cmp.Compare(*ra.Get(), *rb.Get())
}

// Less reports whether a's wrapped value is less than b's.
func Less[T cmp.Ordered](a, b *Cell[T]) bool {
	return Compare(a, b) < 0
}

// LessExpect is Less with a caller-supplied message attached to the
// violation report.
func LessExpect[T cmp.Ordered](a, b *Cell[T], msg string) bool {
	return CompareExpect(a, b, msg) < 0
}

// LessEq reports whether a's wrapped value is less than or equal to b's.
func LessEq[T cmp.Ordered](a, b *Cell[T]) bool {
	return Compare(a, b) <= 0
}

// LessEqExpect is LessEq with a caller-supplied message attached to the
// violation report.
func LessEqExpect[T cmp.Ordered](a, b *Cell[T], msg string) bool {
	return CompareExpect(a, b, msg) <= 0
}

// Greater reports whether a's wrapped value is greater than b's.
func Greater[T cmp.Ordered](a, b *Cell[T]) bool {
	return Compare(a, b) > 0
}

// GreaterExpect is Greater with a caller-supplied message attached to
// the violation report.
func GreaterExpect[T cmp.Ordered](a, b *Cell[T], msg string) bool {
	return CompareExpect(a, b, msg) > 0
}

// GreaterEq reports whether a's wrapped value is greater than or equal
// to b's.
func GreaterEq[T cmp.Ordered](a, b *Cell[T]) bool {
	return Compare(a, b) >= 0
}

// GreaterEqExpect is GreaterEq with a caller-supplied message attached
// to the violation report.
func GreaterEqExpect[T cmp.Ordered](a, b *Cell[T], msg string) bool {
	return CompareExpect(a, b, msg) >= 0
}
