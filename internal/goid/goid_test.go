package goid

import "testing"

func TestIDStableWithinGoroutine(t *testing.T) {
	a, b := ID(), ID()
	if a == 0 {
		t.Fatal("ID() = 0")
	}
	if a != b {
		t.Fatalf("ID changed within one goroutine: %d then %d", a, b)
	}
}

func TestIDDiffersAcrossGoroutines(t *testing.T) {
	main := ID()
	ch := make(chan int64)
	go func() { ch <- ID() }()
	other := <-ch
	if other == 0 {
		t.Fatal("ID() = 0 in spawned goroutine")
	}
	if other == main {
		t.Fatalf("distinct goroutines share ID %d", main)
	}
}
