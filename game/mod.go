package game

// State is what the searcher needs from a game. Play never mutates the
// receiver: it returns an independent copy with the move applied.
type State interface {
	Seats() [2]string
	LegalMoves(player string) []GameMove
	Play(player string, move GameMove) (State, error)
	Winner() string
}

// Fallback is implemented by states that can propose a move when search
// finds none.
type Fallback interface {
	FallbackMove(player string) (GameMove, bool)
}

// Evaluate scores the state from the given player's perspective. Larger is
// better for that player.
type Evaluate func(state State, player string) float64
