package game

import "fmt"

// MoveToken moves the player's token to target if target is a successor of
// its cell in the current reachability graph.
func (gs *GameState) MoveToken(player string, target Position) error {
	seat, err := gs.Seat(player)
	if err != nil {
		return err
	}
	if !target.OnBoard() {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, target)
	}
	from := gs.Players[seat].Position
	if !gs.Graph().HasEdge(from, target) {
		return fmt.Errorf("%w: %s to %s", ErrIllegalMove, from, target)
	}
	gs.Players[seat].Position = target
	return nil
}

// PlaceWall places a wall for the player. Checks run cheapest first; the
// reachability check runs on a tentative placement that is rolled back on
// failure, so a rejected wall leaves the state unchanged.
func (gs *GameState) PlaceWall(player string, at Position, kind MoveKind) error {
	seat, err := gs.Seat(player)
	if err != nil {
		return err
	}
	if !kind.IsWall() {
		return fmt.Errorf("%w: %q is not a wall", ErrInvalidMoveType, kind)
	}
	if gs.Players[seat].Walls <= 0 {
		return fmt.Errorf("%w: %s", ErrWallExhausted, player)
	}
	if !InBounds(kind, at) {
		return fmt.Errorf("%w: %s wall at %s", ErrOutOfBounds, kind, at)
	}
	if gs.Walls.Conflicts(kind, at) {
		return fmt.Errorf("%w: %s wall at %s", ErrWallConflict, kind, at)
	}

	gs.Walls.add(kind, at)
	gs.Players[seat].Walls--

	g := gs.Graph()
	for i, p := range gs.Players {
		if !g.HasPath(p.Position, GoalOf(i)) {
			gs.Walls.removeLast(kind)
			gs.Players[seat].Walls++
			return fmt.Errorf("%w: %s wall at %s cuts off %s", ErrWallWouldIsolatePlayer, kind, at, p.Name)
		}
	}
	return nil
}

// ApplyMove validates and applies a move for the player and returns it. The
// turn counter advances after every successful move of the second seat.
func (gs *GameState) ApplyMove(player string, move GameMove) (GameMove, error) {
	seat, err := gs.Seat(player)
	if err != nil {
		return GameMove{}, err
	}
	if !move.Kind.Valid() {
		return GameMove{}, fmt.Errorf("%w: %q", ErrInvalidMoveType, move.Kind)
	}
	if !move.Position.OnBoard() {
		return GameMove{}, fmt.Errorf("%w: %s", ErrOutOfBounds, move.Position)
	}
	if winner := gs.Winner(); winner != "" {
		return GameMove{}, fmt.Errorf("%w: %s won", ErrGameAlreadyOver, winner)
	}

	if move.Kind == Step {
		err = gs.MoveToken(player, move.Position)
	} else {
		err = gs.PlaceWall(player, move.Position, move.Kind)
	}
	if err != nil {
		return GameMove{}, err
	}

	if seat == 1 {
		gs.Turn++
	}
	return move, nil
}
