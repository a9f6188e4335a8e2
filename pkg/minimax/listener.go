package minimax

// Called once per root move, in ascending move order, after the move's
// subtree has been fully evaluated
type RootMoveFunc func(move, score int)

// Called exactly once per ChooseMove, with the chosen move
type ResultFunc func(move int)

// Listener receives root-level search events. All callbacks are
// invoked from the calling goroutine, after any parallel workers have
// finished, so no synchronization is needed inside them.
type Listener struct {
	onRootMove RootMoveFunc
	onResult   ResultFunc
}

func NewListener() *Listener {
	return &Listener{}
}

func (l *Listener) OnRootMove(f RootMoveFunc) *Listener {
	l.onRootMove = f
	return l
}

func (l *Listener) OnResult(f ResultFunc) *Listener {
	l.onResult = f
	return l
}

func (l *Listener) invokeRootMove(move, score int) {
	if l.onRootMove != nil {
		l.onRootMove(move, score)
	}
}

func (l *Listener) invokeResult(move int) {
	if l.onResult != nil {
		l.onResult(move)
	}
}
