package dcell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrapPresent(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	require.Equal(t, 1, Unwrap(v, ok))
	require.Equal(t, 1, Expect(v, ok, "a was just inserted"))
}

func TestMustSucceeded(t *testing.T) {
	require.Equal(t, 7, Must(7, nil))
	require.Equal(t, 7, MustExpect(7, nil, "constant parse"))
}

func TestMustErrFailed(t *testing.T) {
	sentinel := errors.New("boom")
	require.Same(t, sentinel, MustErr(0, sentinel))
	require.Same(t, sentinel, MustErrExpect(0, sentinel, "must have failed"))
}

func TestAtInRange(t *testing.T) {
	s := []int{10, 20, 30}
	require.Equal(t, 10, *At(s, 0))
	require.Equal(t, 30, *At(s, 2))
	require.Same(t, &s[1], At(s, 1))
	require.Same(t, &s[1], AtExpect(s, 1, "index is fixed"))

	*At(s, 1) = 21
	require.Equal(t, []int{10, 21, 30}, s)
}
