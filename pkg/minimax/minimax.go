// Package minimax implements exhaustive minimax search for tic-tac-toe.
//
// The engine walks the full game tree (no pruning, no transposition
// table, the 3x3 tree is small enough) and picks the root move with the
// best game-theoretic value, breaking ties deterministically towards
// the lowest move index.
package minimax

import (
	"errors"
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
	"golang.org/x/sync/errgroup"
)

// Heuristic score bounds. Positive favors Cross, negative favors
// Circle, magnitude decays with depth so faster wins (and slower
// losses) score better.
const (
	WinScore  = 100
	LossScore = -100
	DrawScore = 0
)

// Returned when the search reaches a non-terminal position with no
// playable move, which means terminal detection is broken upstream
var ErrInvariant = errors.New("search invariant violated: non-terminal position with no playable move")

type Minimax struct {
	limits   *Limits
	stats    *SearchStats
	listener *Listener
}

func New() *Minimax {
	return &Minimax{
		limits:   DefaultLimits(),
		stats:    newSearchStats(),
		listener: NewListener(),
	}
}

func (m *Minimax) SetLimits(limits *Limits) {
	m.limits = limits
}

func (m *Minimax) Limits() *Limits {
	return m.limits
}

// Stats of the last ChooseMove call (or the one currently running)
func (m *Minimax) Stats() *SearchStats {
	return m.stats
}

func (m *Minimax) Listener() *Listener {
	return m.listener
}

func (m *Minimax) SetListener(listener Listener) {
	*m.listener = listener
}

// Score a finished (or depth-capped) position, as seen 'depth' plies
// below the root
func terminalScore(state ttt.GameState, depth int) int {
	switch state.Winner() {
	case ttt.Cross:
		return WinScore - depth
	case ttt.Circle:
		return LossScore + depth
	default:
		// draw, or cut off before a terminal state
		return DrawScore
	}
}

// Evaluate returns the game-theoretic value of the position, 'depth'
// plies below the root. Cross moves when 'maximizing', Circle
// otherwise. The walk is depth-first over successor boards, each stack
// frame owns its own board copy and nothing is shared between sibling
// subtrees.
func (m *Minimax) Evaluate(b ttt.Board, maximizing bool, depth int) (int, error) {
	m.stats.observe(depth)

	state := b.TerminalState()
	if state.Finished() || depth >= m.limits.Depth {
		m.stats.leaves.Inc()
		return terminalScore(state, depth), nil
	}

	moves := b.AvailableMoves()
	if moves.Size == 0 {
		return 0, ErrInvariant
	}

	player := ttt.Cross
	best := LossScore
	if !maximizing {
		player = ttt.Circle
		best = WinScore
	}

	for _, mv := range moves.Slice() {
		next, ok, err := b.WithMove(player, mv)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, ErrInvariant
		}

		score, err := m.Evaluate(next, !maximizing, depth+1)
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best, nil
}

// ChooseMove evaluates every legal root move and returns the one
// realizing the best score. Among equally scored moves the lowest
// index wins, deterministically. A finished root position yields
// Move == NoMove and the position's terminal score.
//
// Each call starts from fresh stats and a fresh tie-break tally,
// back-to-back calls on unrelated boards are fully independent.
func (m *Minimax) ChooseMove(b ttt.Board, maximizing bool) (Result, error) {
	start := time.Now()
	m.stats.reset()
	m.stats.observe(0)

	if state := b.TerminalState(); state.Finished() {
		m.stats.leaves.Inc()
		return m.result(NoMove, terminalScore(state, 0), start), nil
	}

	moves := b.AvailableMoves()
	if moves.Size == 0 {
		return m.result(NoMove, 0, start), ErrInvariant
	}

	player := ttt.Cross
	if !maximizing {
		player = ttt.Circle
	}

	// Evaluate root subtrees, concurrently when NThreads > 1. Workers
	// write disjoint slots of 'scores', so the aggregation below is
	// identical to the sequential walk.
	scores := make([]int, moves.Size)

	var errg errgroup.Group
	errg.SetLimit(m.limits.NThreads)

	for i, mv := range moves.Slice() {
		i, mv := i, mv
		errg.Go(func() error {
			next, ok, err := b.WithMove(player, mv)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInvariant
			}

			score, err := m.Evaluate(next, !maximizing, 1)
			if err == nil {
				scores[i] = score
			}
			return err
		})
	}

	if err := errg.Wait(); err != nil {
		return m.result(NoMove, 0, start), err
	}

	// Root bookkeeping: tally buckets keep ascending move order, the
	// running best is folded in the same order.
	tally := make(moveTally, moves.Size)
	best := LossScore
	if !maximizing {
		best = WinScore
	}

	for i, mv := range moves.Slice() {
		tally.add(scores[i], mv)
		if maximizing {
			best = max(best, scores[i])
		} else {
			best = min(best, scores[i])
		}
		m.listener.invokeRootMove(mv, scores[i])
	}

	move, ok := tally.first(best)
	if !ok {
		return m.result(NoMove, 0, start), ErrInvariant
	}

	m.listener.invokeResult(move)
	return m.result(move, best, start), nil
}

func (m *Minimax) result(move, score int, start time.Time) Result {
	return Result{
		Move:    move,
		Score:   score,
		Nodes:   m.stats.Nodes(),
		Depth:   m.stats.MaxDepth(),
		Elapsed: time.Since(start),
	}
}
