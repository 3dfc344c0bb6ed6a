//go:build !dcell_unchecked

package dcell

import "fmt"

// RefMut is the exclusive, mutable view of a Cell's value. While it is
// live the cell admits no other guard of either kind.
//
// Like Ref, consuming transforms take a *RefMut and invalidate it in
// place so a stale copy cannot release the claim twice.
type RefMut[T any] struct {
	v *T
	b *borrowState
}

// Get returns a mutable pointer to the borrowed value.
func (m *RefMut[T]) Get() *T {
	if m.b == nil {
		panic(borrowErr("use of released RefMut", "", ""))
	}
	return m.v
}

// Release returns the guard's exclusive claim to the cell. Releasing
// twice is a reported violation.
func (m *RefMut[T]) Release() {
	if m.b == nil {
		panic(borrowErr("release of released RefMut", "", ""))
	}
	m.b.releaseExclusive()
	m.v, m.b = nil, nil
}

// String formats the borrowed value.
func (m *RefMut[T]) String() string {
	if m.b == nil {
		return "<released>"
	}
	return fmt.Sprint(*m.v)
}

// MapMut makes a RefMut for a component of the borrowed value. It
// consumes m: the exclusive claim transfers to the returned guard and m
// becomes invalid.
func MapMut[T, U any](m *RefMut[T], f func(*T) *U) RefMut[U] {
	if m.b == nil {
		panic(borrowErr("map of released RefMut", "", ""))
	}
	m.b.assertOwner()
	nm := RefMut[U]{v: f(m.v), b: m.b}
	m.v, m.b = nil, nil
	return nm
}

// FilterMapMut makes a RefMut for an optional component of the borrowed
// value. If f returns nil the component does not exist: FilterMapMut
// reports false and m stays valid. Otherwise the claim transfers as
// with MapMut and m becomes invalid.
func FilterMapMut[T, U any](m *RefMut[T], f func(*T) *U) (RefMut[U], bool) {
	if m.b == nil {
		panic(borrowErr("map of released RefMut", "", ""))
	}
	m.b.assertOwner()
	u := f(m.v)
	if u == nil {
		return RefMut[U]{}, false
	}
	nm := RefMut[U]{v: u, b: m.b}
	m.v, m.b = nil, nil
	return nm, true
}

// MapSplitMut splits a RefMut into two RefMuts for different components
// of the borrowed value. The two components must be structurally
// disjoint — f must not return overlapping views, which the checked
// profile cannot verify. It consumes m; the cell stays in the exclusive
// state until both halves are released.
func MapSplitMut[T, U, V any](m *RefMut[T], f func(*T) (*U, *V)) (RefMut[U], RefMut[V]) {
	if m.b == nil {
		panic(borrowErr("map of released RefMut", "", ""))
	}
	m.b.assertOwner()
	u, v := f(m.v)
	b := m.b
	b.muts++
	m.v, m.b = nil, nil
	return RefMut[U]{v: u, b: b}, RefMut[V]{v: v, b: b}
}

// LeakMut converts a RefMut into a bare pointer with unbounded
// lifetime. The exclusive claim is never returned: the cell remains
// mutably borrowed forever. The checked profile records the leak site;
// see Leaks.
func LeakMut[T any](m *RefMut[T]) *T {
	if m.b == nil {
		panic(borrowErr("leak of released RefMut", "", ""))
	}
	m.b.assertOwner()
	p := m.v
	recordLeak(callerSite(1))
	m.v, m.b = nil, nil
	return p
}
