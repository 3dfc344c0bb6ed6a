//go:build dcell_unchecked

package dcell

// Must extracts the value of a value-error pair. The caller asserts the
// operation succeeded; this profile does not check.
func Must[T any](v T, err error) T {
	return v
}

// MustExpect is Must; the message is unused in this profile.
func MustExpect[T any](v T, err error, msg string) T {
	return v
}

// MustErr extracts the error of a value-error pair. The caller asserts
// the operation failed; this profile does not check.
func MustErr[T any](v T, err error) error {
	return err
}

// MustErrExpect is MustErr; the message is unused in this profile.
func MustErrExpect[T any](v T, err error, msg string) error {
	return err
}
