//go:build dcell_unchecked

package dcell

// Unwrap extracts the value of a comma-ok pair. The caller asserts the
// value is present; this profile does not check.
func Unwrap[T any](v T, ok bool) T {
	return v
}

// Expect is Unwrap; the message is unused in this profile.
func Expect[T any](v T, ok bool, msg string) T {
	return v
}
