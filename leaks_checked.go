//go:build !dcell_unchecked

package dcell

import "github.com/llxisdsh/pb"

// leakSites counts leaked guards per call site, process wide. Cells
// live on many goroutines, so the registry itself must be concurrent
// even though each cell is not.
var leakSites pb.MapOf[string, int64]

func recordLeak(site string) {
	leakSites.ProcessEntry(
		site,
		func(l *pb.EntryOf[string, int64]) (*pb.EntryOf[string, int64], int64, bool) {
			if l != nil {
				return &pb.EntryOf[string, int64]{Value: l.Value + 1}, l.Value + 1, true
			}
			return &pb.EntryOf[string, int64]{Value: 1}, 1, false
		},
	)
}

// Leaks reports how many guards have been leaked so far, grouped by the
// call site of the Leak or LeakMut that consumed them. Leaked claims
// are never returned, so a nonzero entry here usually explains a cell
// that refuses further mutable borrows. The unchecked profile records
// nothing and always reports an empty map.
func Leaks() map[string]int64 {
	out := make(map[string]int64)
	leakSites.Range(func(site string, n int64) bool {
		out[site] = n
		return true
	})
	return out
}
