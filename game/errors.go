package game

import "errors"

// Every error returned by the game package wraps one of these kinds. They
// reject a single request and never leave the state half-updated.
var (
	ErrInvalidPlayer          = errors.New("player does not exist")
	ErrInvalidMoveType        = errors.New("invalid move type")
	ErrOutOfBounds            = errors.New("position is out of bounds")
	ErrIllegalMove            = errors.New("position is not reachable in one move")
	ErrWallExhausted          = errors.New("player has no walls left")
	ErrWallConflict           = errors.New("a wall already occupies this position")
	ErrWallWouldIsolatePlayer = errors.New("wall would enclose a player")
	ErrGameAlreadyOver        = errors.New("game is already over")
	ErrInvalidSnapshot        = errors.New("invalid snapshot")
)
