//go:build dcell_unchecked

package dcell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Without the seal, a panicking replace closure simply unwinds; the
// profile promises no process abort.
func TestReplaceWithPanicPropagates(t *testing.T) {
	c := New(1)
	require.PanicsWithValue(t, "closure blew up", func() {
		c.ReplaceWith(func(*int) int { panic("closure blew up") })
	})
}

// The helpers trust their caller in this profile: the "violating" calls
// below are defined (they return the inputs), unlike the cell itself
// where a violation is real undefined behavior and cannot be tested.
func TestHelpersSkipChecks(t *testing.T) {
	require.Equal(t, 5, Unwrap(5, false))
	require.Equal(t, 5, Expect(5, false, "ignored"))
	require.Equal(t, 5, Must(5, nil))
	require.Nil(t, MustErr(5, nil))
	require.NotPanics(t, func() { Unreachable("ignored") })
}

func TestSelfSwapIsNoOp(t *testing.T) {
	c := New(3)
	c.Swap(c)
	require.Equal(t, 3, c.IntoInner())
}
