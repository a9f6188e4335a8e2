package ttt

import (
	"errors"
	"testing"
)

func occupied(b Board) int {
	n := 0
	for _, p := range b {
		if p != None {
			n++
		}
	}
	return n
}

func TestWithMoveInvalidPosition(t *testing.T) {
	b := NewBoard()

	for _, pos := range []int{-1, 9, 42} {
		if _, _, err := b.WithMove(Cross, pos); !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("WithMove(Cross, %d): expected ErrInvalidPosition, got %v", pos, err)
		}
	}
}

func TestWithMoveInvalidSymbol(t *testing.T) {
	b := NewBoard()

	for _, p := range []PlayerType{None, PlayerType(7)} {
		if _, _, err := b.WithMove(p, 4); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("WithMove(%d, 4): expected ErrInvalidSymbol, got %v", p, err)
		}
	}
}

func TestWithMoveOccupied(t *testing.T) {
	b, ok, err := NewBoard().WithMove(Cross, 4)
	if err != nil || !ok {
		t.Fatalf("setup move failed: ok=%v err=%v", ok, err)
	}

	b2, ok, err := b.WithMove(Circle, 4)
	if err != nil {
		t.Fatalf("occupied cell must not be an error, got %v", err)
	}
	if ok {
		t.Fatal("occupied cell reported ok=true")
	}
	if b2 != b {
		t.Fatalf("occupied cell changed the board:\n%s\nvs\n%s", b, b2)
	}
}

func TestWithMoveIncreasesOccupiedByOne(t *testing.T) {
	b := NewBoard()

	for i, p := 0, Cross; i < 9; i, p = i+1, p.Opponent() {
		before := occupied(b)

		next, ok, err := b.WithMove(p, i)
		if err != nil || !ok {
			t.Fatalf("WithMove(%v, %d): ok=%v err=%v", p, i, ok, err)
		}
		if occupied(next) != before+1 {
			t.Fatalf("occupied count %d, want %d", occupied(next), before+1)
		}
		if occupied(b) != before {
			t.Fatal("receiver board was mutated")
		}

		b = next
	}

	if !b.IsFull() {
		t.Fatal("board should be full after 9 moves")
	}
}

func TestAvailableMovesCount(t *testing.T) {
	b := NewBoard()

	for i := 0; i < 9; i++ {
		moves := b.AvailableMoves()
		if int(moves.Size)+occupied(b) != 9 {
			t.Fatalf("moves (%d) + occupied (%d) != 9", moves.Size, occupied(b))
		}

		// Ascending order
		for j := 1; j < int(moves.Size); j++ {
			if moves.Moves[j-1] >= moves.Moves[j] {
				t.Fatalf("moves not ascending: %v", moves.Slice())
			}
		}

		b, _, _ = b.WithMove(Cross, moves.Moves[0])
	}

	if moves := b.AvailableMoves(); moves.Size != 0 {
		t.Fatalf("full board has %d moves", moves.Size)
	}
}

func TestIsEmptyIsFull(t *testing.T) {
	b := NewBoard()
	if !b.IsEmpty() || b.IsFull() {
		t.Fatal("fresh board should be empty and not full")
	}

	b, _, _ = b.WithMove(Cross, 0)
	if b.IsEmpty() || b.IsFull() {
		t.Fatal("board with one piece is neither empty nor full")
	}
}
