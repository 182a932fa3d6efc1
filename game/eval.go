package game

import "math"

// EvaluateDistance scores a state by the race to the goal rows: the
// opponent's shortest-path distance minus the player's own. A side that
// cannot reach its row at all counts as infinitely far.
func EvaluateDistance(s State, player string) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	seat, err := gs.Seat(player)
	if err != nil {
		panic(err)
	}

	g := gs.Graph()
	own := distanceToGoal(g, gs.Players[seat].Position, seat)
	opponent := distanceToGoal(g, gs.Players[1-seat].Position, 1-seat)

	switch {
	case own < 0 && opponent < 0:
		return 0
	case own < 0:
		return math.Inf(-1)
	case opponent < 0:
		return math.Inf(1)
	}
	return float64(opponent - own)
}
