//go:build !dcell_unchecked

package dcell

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

// The torn-state safeguard cannot be observed in-process: a panicking
// replace closure takes the whole process down. Re-exec the test binary
// and inspect the wreckage.
func TestReplaceWithPanicAborts(t *testing.T) {
	if os.Getenv("DCELL_CRASH_TEST") == "1" {
		c := New(1)
		c.ReplaceWith(func(*int) int { panic("closure blew up") })
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestReplaceWithPanicAborts")
	cmd.Env = append(os.Environ(), "DCELL_CRASH_TEST=1")
	out, err := cmd.CombinedOutput()

	var ee *exec.ExitError
	require.ErrorAs(t, err, &ee, "process should have aborted, output: %s", out)
	require.Equal(t, 2, ee.ExitCode())
	require.Contains(t, string(out), "panic in replace closure")
	require.Contains(t, string(out), "closure blew up")
}
