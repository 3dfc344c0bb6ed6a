//go:build !dcell_unchecked

package dcell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// catchCheck runs f, which must panic with a *CheckError, and returns
// the error for inspection.
func catchCheck(t *testing.T, f func()) *CheckError {
	t.Helper()
	var ce *CheckError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a check violation")
			err, ok := r.(error)
			require.True(t, ok, "panic value %#v is not an error", r)
			require.ErrorAs(t, err, &ce)
		}()
		f()
	}()
	return ce
}

func TestUnwrapAbsentReported(t *testing.T) {
	m := map[string]int{}
	v, ok := m["missing"]

	ce := catchCheck(t, func() { Unwrap(v, ok) })
	require.Contains(t, ce.Error(), "absent value")
	require.Contains(t, ce.Error(), "helpers_checked_test.go:")

	ce = catchCheck(t, func() { Expect(v, ok, "missing is always set") })
	require.Contains(t, ce.Error(), "missing is always set")
}

func TestMustFailedReported(t *testing.T) {
	err := errors.New("disk on fire")

	ce := catchCheck(t, func() { Must(0, err) })
	require.Contains(t, ce.Error(), "disk on fire")

	ce = catchCheck(t, func() { MustExpect(0, err, "config always parses") })
	require.Contains(t, ce.Error(), "config always parses")
}

func TestMustErrSucceededReported(t *testing.T) {
	ce := catchCheck(t, func() { MustErr(42, nil) })
	require.Contains(t, ce.Error(), "succeeded result")

	ce = catchCheck(t, func() { MustErrExpect(42, nil, "lookup always misses") })
	require.Contains(t, ce.Error(), "lookup always misses")
}

func TestAtOutOfRangeReported(t *testing.T) {
	s := []int{1, 2}

	ce := catchCheck(t, func() { At(s, 2) })
	require.Contains(t, ce.Error(), "index 2 out of range [0:2)")

	ce = catchCheck(t, func() { At(s, -1) })
	require.Contains(t, ce.Error(), "index -1")

	ce = catchCheck(t, func() { AtExpect(s, 5, "len is at least 6") })
	require.Contains(t, ce.Error(), "len is at least 6")
}

func TestUnreachableReported(t *testing.T) {
	ce := catchCheck(t, func() { Unreachable("enum is exhaustive") })
	require.Contains(t, ce.Error(), "entered unreachable code")
	require.Contains(t, ce.Error(), "enum is exhaustive")
}
