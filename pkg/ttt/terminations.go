package ttt

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCrossWon  Termination = 1
	TerminationCircleWon Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCrossWon:
		return "CrossWon"
	case TerminationCircleWon:
		return "CircleWon"
	case TerminationDraw:
		return "Draw"
	default:
		return "None"
	}
}

// The 8 winning lines: rows, columns, diagonals. The scan order is part
// of the contract: on an (illegally) constructed board holding several
// complete lines, the first one in this list is the reported winner.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// GameState is the terminal classification of a board, derived on
// demand and never stored on the board itself.
type GameState struct {
	Termination Termination
	Line        [3]int // winning line indices, meaningful only when HasLine
	HasLine     bool
}

func (gs GameState) Finished() bool {
	return gs.Termination != TerminationNone
}

// Winner returns the winning player, or None for a draw or an
// unfinished game
func (gs GameState) Winner() PlayerType {
	switch gs.Termination {
	case TerminationCrossWon:
		return Cross
	case TerminationCircleWon:
		return Circle
	default:
		return None
	}
}

// TerminalState classifies the board. The empty board is never
// finished. A full board with a complete line reports that winner,
// not a draw.
func (b Board) TerminalState() GameState {
	if b.IsEmpty() {
		return GameState{}
	}

	for _, line := range winningLines {
		p := b[line[0]]
		if p != None && p == b[line[1]] && p == b[line[2]] {
			termination := TerminationCrossWon
			if p == Circle {
				termination = TerminationCircleWon
			}
			return GameState{Termination: termination, Line: line, HasLine: true}
		}
	}

	if b.IsFull() {
		return GameState{Termination: TerminationDraw}
	}

	return GameState{}
}
