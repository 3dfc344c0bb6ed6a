//go:build !dcell_unchecked

package dcell

import "fmt"

// Ref is a shared, read-only view of a Cell's value. While any Ref is
// live the cell counts as borrowed and cannot be mutably borrowed.
//
// Go passes guards by value, so a transform that consumes its input
// (Map, MapSplit, Leak) takes a *Ref and invalidates it in place; any
// later use of the consumed guard is a reported violation.
type Ref[T any] struct {
	v *T
	b *borrowState
}

// Get returns a pointer to the borrowed value. The pointee must be
// treated as read-only; mutating through a shared view is a contract
// violation the checked profile cannot see.
func (r *Ref[T]) Get() *T {
	if r.b == nil {
		panic(borrowErr("use of released Ref", "", ""))
	}
	return r.v
}

// Release returns the guard's claim to the cell. Releasing twice is a
// reported violation.
func (r *Ref[T]) Release() {
	if r.b == nil {
		panic(borrowErr("release of released Ref", "", ""))
	}
	r.b.releaseShared()
	r.v, r.b = nil, nil
}

// String formats the borrowed value.
func (r *Ref[T]) String() string {
	if r.b == nil {
		return "<released>"
	}
	return fmt.Sprint(*r.v)
}

// Clone duplicates a Ref. The cell is already in the shared state, so
// this cannot fail; the shared count simply rises by one. The original
// stays valid.
func Clone[T any](r *Ref[T]) Ref[T] {
	if r.b == nil {
		panic(borrowErr("clone of released Ref", "", ""))
	}
	r.b.assertOwner()
	r.b.state++
	return Ref[T]{v: r.v, b: r.b}
}

// Map makes a Ref for a component of the borrowed value. It consumes r:
// the claim transfers to the returned guard and r becomes invalid.
func Map[T, U any](r *Ref[T], f func(*T) *U) Ref[U] {
	if r.b == nil {
		panic(borrowErr("map of released Ref", "", ""))
	}
	r.b.assertOwner()
	nr := Ref[U]{v: f(r.v), b: r.b}
	r.v, r.b = nil, nil
	return nr
}

// FilterMap makes a Ref for an optional component of the borrowed
// value. If f returns nil the component does not exist: FilterMap
// reports false and r stays valid. Otherwise the claim transfers as
// with Map and r becomes invalid.
func FilterMap[T, U any](r *Ref[T], f func(*T) *U) (Ref[U], bool) {
	if r.b == nil {
		panic(borrowErr("map of released Ref", "", ""))
	}
	r.b.assertOwner()
	u := f(r.v)
	if u == nil {
		return Ref[U]{}, false
	}
	nr := Ref[U]{v: u, b: r.b}
	r.v, r.b = nil, nil
	return nr, true
}

// MapSplit splits a Ref into two Refs for different components of the
// borrowed value. It consumes r; the single original claim covers both
// halves, so the shared count rises by one and each half releases
// independently.
func MapSplit[T, U, V any](r *Ref[T], f func(*T) (*U, *V)) (Ref[U], Ref[V]) {
	if r.b == nil {
		panic(borrowErr("map of released Ref", "", ""))
	}
	r.b.assertOwner()
	u, v := f(r.v)
	b := r.b
	b.state++
	r.v, r.b = nil, nil
	return Ref[U]{v: u, b: b}, Ref[V]{v: v, b: b}
}

// Leak converts a Ref into a bare pointer with unbounded lifetime,
// permanently consuming one unit of the cell's borrow capacity: the
// claim is never returned, so the cell can only reach the unborrowed
// state again if other guards release more than was leaked. The checked
// profile records the leak site; see Leaks.
func Leak[T any](r *Ref[T]) *T {
	if r.b == nil {
		panic(borrowErr("leak of released Ref", "", ""))
	}
	r.b.assertOwner()
	p := r.v
	recordLeak(callerSite(1))
	r.v, r.b = nil, nil
	return p
}
