//go:build !dcell_unchecked

package dcell

// Unwrap extracts the value of a comma-ok pair, asserting the value is
// present. Panics with *CheckError if ok is false; under the unchecked
// profile that condition is undefined behavior instead.
func Unwrap[T any](v T, ok bool) T {
	if !ok {
		panic(checkErr("unwrap of absent value", callerSite(1), ""))
	}
	return v
}

// Expect is Unwrap with a caller-supplied message attached to the
// violation report.
func Expect[T any](v T, ok bool, msg string) T {
	if !ok {
		panic(checkErr("unwrap of absent value", callerSite(1), msg))
	}
	return v
}
