package minimax

// moveTally maps a root score to the move indices that produced it,
// in insertion order. Built fresh for every ChooseMove call and
// discarded with it, so unrelated searches can never contaminate
// each other.
type moveTally map[int][]int

func (t moveTally) add(score, move int) {
	t[score] = append(t[score], move)
}

// first returns the earliest-inserted move for the given score. Root
// moves are tallied in ascending index order, so among equally scored
// moves this is the lowest index.
func (t moveTally) first(score int) (int, bool) {
	bucket := t[score]
	if len(bucket) == 0 {
		return NoMove, false
	}
	return bucket[0], true
}
