// Package goid identifies the current goroutine.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

// ID returns the current goroutine's ID, parsed out of the header line
// of runtime.Stack output ("goroutine 123 [running]:"). It costs on the
// order of a microsecond, which is acceptable for its only caller: the
// checked profile's borrow bookkeeping.
func ID() int64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
