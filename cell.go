package dcell

// New creates an unborrowed Cell containing value.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// GetMut returns a pointer to the underlying data without consulting
// the borrow state.
//
// It is meant for callers that hold the cell exclusively, which
// statically precludes any outstanding guard — typically right after
// the cell has been created. Everywhere else, use BorrowMut.
func (c *Cell[T]) GetMut() *T {
	return &c.value
}

// IntoInner returns the wrapped value, consuming the cell: the caller
// owns the cell at this point, so no guard can be outstanding and no
// check is needed. The cell must not be used afterwards.
func (c *Cell[T]) IntoInner() T {
	return c.value
}

// AsPtr returns a raw pointer to the underlying data. It performs no
// bookkeeping in either profile; the caller accepts full responsibility
// for aliasing.
func (c *Cell[T]) AsPtr() *T {
	return &c.value
}

// Replace replaces the wrapped value with v and returns the old value.
// It acquires an exclusive guard for the duration, so it fails exactly
// as BorrowMut does while the cell is borrowed.
func (c *Cell[T]) Replace(v T) T {
	m := c.BorrowMut()
	defer m.Release()
	p := m.Get()
	old := *p
	*p = v
	return old
}

// ReplaceExpect is Replace with a caller-supplied message attached to
// the violation report.
func (c *Cell[T]) ReplaceExpect(v T, msg string) T {
	m := c.BorrowMutExpect(msg)
	defer m.Release()
	p := m.Get()
	old := *p
	*p = v
	return old
}

// ReplaceWith replaces the wrapped value with f's result and returns
// the old value. f receives a pointer to the current value and must not
// panic: the checked profile aborts the process if it does, because the
// replacement reads and writes the same location in place. It fails
// exactly as BorrowMut does while the cell is borrowed.
func (c *Cell[T]) ReplaceWith(f func(*T) T) T {
	m := c.BorrowMut()
	defer m.Release()
	return replaceWith(m.Get(), f)
}

// ReplaceWithExpect is ReplaceWith with a caller-supplied message
// attached to the violation report.
func (c *Cell[T]) ReplaceWithExpect(f func(*T) T, msg string) T {
	m := c.BorrowMutExpect(msg)
	defer m.Release()
	return replaceWith(m.Get(), f)
}

func replaceWith[T any](p *T, f func(*T) T) T {
	var repl T
	runSealed(func() { repl = f(p) })
	old := *p
	*p = repl
	return old
}

// Swap exchanges the wrapped values of c and other. It acquires an
// exclusive guard on each cell, so it fails exactly as BorrowMut does
// while either cell is borrowed.
//
// Swapping a cell with itself is rejected by the checked profile: the
// second exclusive acquisition finds the cell already mutably borrowed.
// The unchecked profile treats self-swap as a no-op.
func (c *Cell[T]) Swap(other *Cell[T]) {
	a := c.BorrowMut()
	defer a.Release()
	b := other.BorrowMut()
	defer b.Release()
	pa, pb := a.Get(), b.Get()
	*pa, *pb = *pb, *pa
}

// SwapExpect is Swap with a caller-supplied message attached to the
// violation report.
func (c *Cell[T]) SwapExpect(other *Cell[T], msg string) {
	a := c.BorrowMutExpect(msg)
	defer a.Release()
	b := other.BorrowMutExpect(msg)
	defer b.Release()
	pa, pb := a.Get(), b.Get()
	*pa, *pb = *pb, *pa
}

// Clone returns a new cell containing a copy of the wrapped value. It
// acquires a shared guard for the read, so it fails exactly as Borrow
// does while the cell is mutably borrowed. The copy is shallow, as with
// any Go assignment.
func (c *Cell[T]) Clone() *Cell[T] {
	r := c.Borrow()
	defer r.Release()
	return New(*r.Get())
}

// CloneExpect is Clone with a caller-supplied message attached to the
// violation report.
func (c *Cell[T]) CloneExpect(msg string) *Cell[T] {
	r := c.BorrowExpect(msg)
	defer r.Release()
	return New(*r.Get())
}

// CloneMut is Clone for callers that hold the cell exclusively. Like
// GetMut, it skips the dynamic checks because whole-cell exclusivity
// statically precludes outstanding guards.
func (c *Cell[T]) CloneMut() *Cell[T] {
	return New(*c.GetMut())
}
