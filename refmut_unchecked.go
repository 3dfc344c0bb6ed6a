//go:build dcell_unchecked

package dcell

import "fmt"

// RefMut is the exclusive, mutable view of a Cell's value. In this
// profile it is a bare pointer wrapper with no claim behind it; holding
// two at once is undefined behavior.
type RefMut[T any] struct {
	v *T
}

// Get returns a mutable pointer to the borrowed value.
func (m *RefMut[T]) Get() *T {
	return m.v
}

// Release returns the guard's exclusive claim. Nothing observable
// happens in this profile.
func (m *RefMut[T]) Release() {}

// String formats the borrowed value.
func (m *RefMut[T]) String() string {
	return fmt.Sprint(*m.v)
}

// MapMut makes a RefMut for a component of the borrowed value,
// consuming m.
func MapMut[T, U any](m *RefMut[T], f func(*T) *U) RefMut[U] {
	return RefMut[U]{v: f(m.v)}
}

// FilterMapMut makes a RefMut for an optional component of the borrowed
// value. If f returns nil, FilterMapMut reports false and m stays
// valid.
func FilterMapMut[T, U any](m *RefMut[T], f func(*T) *U) (RefMut[U], bool) {
	u := f(m.v)
	if u == nil {
		return RefMut[U]{}, false
	}
	return RefMut[U]{v: u}, true
}

// MapSplitMut splits a RefMut into two RefMuts for different components
// of the borrowed value. The components must be structurally disjoint.
func MapSplitMut[T, U, V any](m *RefMut[T], f func(*T) (*U, *V)) (RefMut[U], RefMut[V]) {
	u, v := f(m.v)
	return RefMut[U]{v: u}, RefMut[V]{v: v}
}

// LeakMut converts a RefMut into a bare pointer with unbounded
// lifetime.
func LeakMut[T any](m *RefMut[T]) *T {
	return m.v
}
