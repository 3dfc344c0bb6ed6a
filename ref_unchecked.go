//go:build dcell_unchecked

package dcell

import "fmt"

// Ref is a shared, read-only view of a Cell's value. In this profile it
// is a bare pointer wrapper; nothing tracks how many exist, and using
// one while an exclusive view is live is undefined behavior.
type Ref[T any] struct {
	v *T
}

// Get returns a pointer to the borrowed value. The pointee must be
// treated as read-only.
func (r *Ref[T]) Get() *T {
	return r.v
}

// Release returns the guard's claim. Nothing observable happens in this
// profile.
func (r *Ref[T]) Release() {}

// String formats the borrowed value.
func (r *Ref[T]) String() string {
	return fmt.Sprint(*r.v)
}

// Clone duplicates a Ref. This cannot fail.
func Clone[T any](r *Ref[T]) Ref[T] {
	return Ref[T]{v: r.v}
}

// Map makes a Ref for a component of the borrowed value, consuming r.
func Map[T, U any](r *Ref[T], f func(*T) *U) Ref[U] {
	return Ref[U]{v: f(r.v)}
}

// FilterMap makes a Ref for an optional component of the borrowed
// value. If f returns nil, FilterMap reports false and r stays valid.
func FilterMap[T, U any](r *Ref[T], f func(*T) *U) (Ref[U], bool) {
	u := f(r.v)
	if u == nil {
		return Ref[U]{}, false
	}
	return Ref[U]{v: u}, true
}

// MapSplit splits a Ref into two Refs for different components of the
// borrowed value, consuming r.
func MapSplit[T, U, V any](r *Ref[T], f func(*T) (*U, *V)) (Ref[U], Ref[V]) {
	u, v := f(r.v)
	return Ref[U]{v: u}, Ref[V]{v: v}
}

// Leak converts a Ref into a bare pointer with unbounded lifetime. In
// this profile there is no capacity to consume.
func Leak[T any](r *Ref[T]) *T {
	return r.v
}
