package minimax

import "testing"

func TestDefaultLimits(t *testing.T) {
	l := DefaultLimits()

	if !l.InfiniteDepth() {
		t.Fatal("default depth should be unlimited")
	}
	if l.NThreads != 1 {
		t.Fatalf("default NThreads %d, want 1", l.NThreads)
	}
}

func TestLimitsSetters(t *testing.T) {
	l := DefaultLimits().SetDepth(3).SetThreads(0)

	if l.Depth != 3 || l.InfiniteDepth() {
		t.Fatalf("SetDepth(3) gave %d", l.Depth)
	}
	if l.NThreads != 1 {
		t.Fatalf("SetThreads(0) must clamp to 1, got %d", l.NThreads)
	}
}
