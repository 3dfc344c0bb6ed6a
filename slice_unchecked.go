//go:build dcell_unchecked

package dcell

import "unsafe"

// At returns a pointer to s[i]. The caller asserts i is in range; this
// profile addresses the element directly so the compiler's bounds check
// never runs.
func At[E any](s []E, i int) *E {
	var zero E
	return (*E)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*unsafe.Sizeof(zero)))
}

// AtExpect is At; the message is unused in this profile.
func AtExpect[E any](s []E, i int, msg string) *E {
	return At(s, i)
}
