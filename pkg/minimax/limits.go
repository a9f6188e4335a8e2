package minimax

import (
	"encoding/json"
	"math"
	"strings"
)

type Limits struct {
	Depth    int
	NThreads int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

// Sentinel meaning "search all the way to true terminal states"
const DefaultDepthLimit int = math.MaxInt

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepthLimit,
		NThreads: 1,
	}
}

// Set the maximum depth of the search, nodes at the cap score as draws
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	return l
}

// Set the number of workers evaluating root moves
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}

func (l *Limits) InfiniteDepth() bool {
	return l.Depth == DefaultDepthLimit
}
