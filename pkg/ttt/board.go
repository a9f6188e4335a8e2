// Package ttt implements the rules of 3x3 tic-tac-toe: an immutable
// board snapshot, move generation and terminal-state detection.
package ttt

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPosition = errors.New("position out of range")
	ErrInvalidSymbol   = errors.New("invalid player symbol")
)

// Board is a complete snapshot of the grid, stored row-major
// (0,1,2 / 3,4,5 / 6,7,8). Boards are values: every "mutation"
// produces a distinct copy, so a board held by one search branch
// can never be changed by another.
type Board [9]PlayerType

func NewBoard() Board {
	return Board{}
}

// At returns the symbol at pos, or None if pos is out of range
func (b Board) At(pos int) PlayerType {
	if pos < 0 || pos > 8 {
		return None
	}
	return b[pos]
}

// IsEmpty reports whether no move has been played yet
func (b Board) IsEmpty() bool {
	for _, p := range b {
		if p != None {
			return false
		}
	}
	return true
}

// IsFull reports whether every cell is occupied
func (b Board) IsFull() bool {
	for _, p := range b {
		if p == None {
			return false
		}
	}
	return true
}

// WithMove returns a successor board with 'p' placed at 'pos'.
// Placing on an occupied cell is not an error: it returns the receiver
// unchanged and ok == false. Callers feeding indices from AvailableMoves
// never hit that branch, it exists as an invariant check.
func (b Board) WithMove(p PlayerType, pos int) (Board, bool, error) {
	if pos < 0 || pos > 8 {
		return b, false, ErrInvalidPosition
	}
	if !p.Valid() {
		return b, false, ErrInvalidSymbol
	}
	if b[pos] != None {
		return b, false, nil
	}
	b[pos] = p
	return b, true, nil
}

func (b Board) String() string {
	var s strings.Builder
	for r := 0; r < 3; r++ {
		s.WriteByte('[')
		for c := 0; c < 3; c++ {
			if c > 0 {
				s.WriteByte(' ')
			}
			s.WriteString(b[r*3+c].String())
		}
		s.WriteByte(']')
		if r < 2 {
			s.WriteByte('\n')
		}
	}
	return s.String()
}
