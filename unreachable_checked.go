//go:build !dcell_unchecked

package dcell

// Unreachable marks a code path the caller asserts can never execute.
// Reaching it panics with *CheckError; under the unchecked profile the
// call does nothing and reaching it is undefined behavior.
func Unreachable(msg string) {
	panic(checkErr("entered unreachable code", callerSite(1), msg))
}
