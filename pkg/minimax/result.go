package minimax

import (
	"fmt"
	"time"
)

// NoMove is reported when there is nothing to choose: ChooseMove was
// handed an already finished position.
const NoMove = -1

// Result of a single ChooseMove invocation
type Result struct {
	Move    int
	Score   int
	Nodes   int64
	Depth   int
	Elapsed time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("Result={Move=%d, Score=%d, Nodes=%d, Depth=%d, Elapsed=%s}",
		r.Move, r.Score, r.Nodes, r.Depth, r.Elapsed)
}
