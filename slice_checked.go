//go:build !dcell_unchecked

package dcell

import "fmt"

// At returns a pointer to s[i], asserting i is in range. Panics with
// *CheckError on an out-of-range index; under the unchecked profile the
// bounds check is elided entirely and an out-of-range index is
// undefined behavior.
func At[E any](s []E, i int) *E {
	if i < 0 || i >= len(s) {
		panic(checkErr(fmt.Sprintf("index %d out of range [0:%d)", i, len(s)), callerSite(1), ""))
	}
	return &s[i]
}

// AtExpect is At with a caller-supplied message attached to the
// violation report.
func AtExpect[E any](s []E, i int, msg string) *E {
	if i < 0 || i >= len(s) {
		panic(checkErr(fmt.Sprintf("index %d out of range [0:%d)", i, len(s)), callerSite(1), msg))
	}
	return &s[i]
}
