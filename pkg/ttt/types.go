package ttt

type PlayerType uint8

const (
	None   PlayerType = 0
	Cross  PlayerType = 1
	Circle PlayerType = 2
)

// Valid reports whether p is an actual player symbol (not None)
func (p PlayerType) Valid() bool {
	return p == Cross || p == Circle
}

// Opponent returns the other player, or None for None
func (p PlayerType) Opponent() PlayerType {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	default:
		return None
	}
}

func (p PlayerType) String() string {
	switch p {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return " "
	}
}
