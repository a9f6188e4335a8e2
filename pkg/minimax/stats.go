package minimax

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// SearchStats counts work done by a single ChooseMove invocation.
// Counters are xsync based, so parallel root workers can bump them
// without coordination.
type SearchStats struct {
	nodes    *xsync.Counter
	leaves   *xsync.Counter
	maxdepth atomic.Int32
}

func newSearchStats() *SearchStats {
	return &SearchStats{
		nodes:  xsync.NewCounter(),
		leaves: xsync.NewCounter(),
	}
}

func (s *SearchStats) reset() {
	s.nodes.Reset()
	s.leaves.Reset()
	s.maxdepth.Store(0)
}

// Total number of positions visited
func (s *SearchStats) Nodes() int64 {
	return s.nodes.Value()
}

// Number of terminal (or depth-capped) positions scored
func (s *SearchStats) Leaves() int64 {
	return s.leaves.Value()
}

// Maximum ply reached during the search
func (s *SearchStats) MaxDepth() int {
	return int(s.maxdepth.Load())
}

func (s *SearchStats) observe(depth int) {
	s.nodes.Inc()

	// cas loop, another worker may raise the bar concurrently
	for {
		cur := s.maxdepth.Load()
		if int32(depth) <= cur || s.maxdepth.CompareAndSwap(cur, int32(depth)) {
			return
		}
	}
}
