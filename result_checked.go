//go:build !dcell_unchecked

package dcell

import "fmt"

// Must extracts the value of a value-error pair, asserting the
// operation succeeded. Panics with *CheckError if err is non-nil; under
// the unchecked profile that condition is undefined behavior instead.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(checkErr(fmt.Sprintf("unwrap of failed result: %v", err), callerSite(1), ""))
	}
	return v
}

// MustExpect is Must with a caller-supplied message attached to the
// violation report.
func MustExpect[T any](v T, err error, msg string) T {
	if err != nil {
		panic(checkErr(fmt.Sprintf("unwrap of failed result: %v", err), callerSite(1), msg))
	}
	return v
}

// MustErr extracts the error of a value-error pair, asserting the
// operation failed. Panics with *CheckError if err is nil; under the
// unchecked profile that condition is undefined behavior instead.
func MustErr[T any](v T, err error) error {
	if err == nil {
		panic(checkErr(fmt.Sprintf("unwrap of succeeded result: %v", v), callerSite(1), ""))
	}
	return err
}

// MustErrExpect is MustErr with a caller-supplied message attached to
// the violation report.
func MustErrExpect[T any](v T, err error, msg string) error {
	if err == nil {
		panic(checkErr(fmt.Sprintf("unwrap of succeeded result: %v", v), callerSite(1), msg))
	}
	return err
}
