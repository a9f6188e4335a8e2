package ttt

type MoveList struct {
	Moves [9]int
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv int) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

// Slice returns the populated part of the list
func (ml *MoveList) Slice() []int {
	return ml.Moves[:ml.Size]
}

// AvailableMoves lists the indices of empty cells, in ascending order
func (b Board) AvailableMoves() *MoveList {
	movelist := NewMoveList()

	for pos, p := range b {
		if p == None {
			movelist.AppendMove(pos)
		}
	}

	return movelist
}
