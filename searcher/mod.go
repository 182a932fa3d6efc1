package searcher

import (
	"errors"
	"math"

	"quoridor/game"
)

// ErrNoMove is returned when neither the search nor the fallback can propose
// a move, which only happens on a finished or stalled game.
var ErrNoMove = errors.New("no move available")

var (
	WIN  = math.Inf(1)
	LOSS = math.Inf(-1)
)

func opponentOf(state game.State, player string) string {
	seats := state.Seats()
	if seats[0] == player {
		return seats[1]
	}
	return seats[0]
}
