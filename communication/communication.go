package communication

import (
	"context"
	"errors"

	"quoridor/game"
)

// Transport is the connection to a match server. The server plays the other
// seat and answers every accepted move with its own.
type Transport interface {
	// Create starts a new match and returns its id and initial state.
	Create(ctx context.Context) (id string, state game.Snapshot, err error)
	// Submit sends the player's move and returns the server's reply.
	Submit(ctx context.Context, id string, move game.GameMove) (Outcome, error)
	// Fetch returns the current state of a match.
	Fetch(ctx context.Context, id string) (game.Snapshot, error)
}

// Outcome is the server's answer to a submitted move: either the opponent's
// reply or the end of the match.
type Outcome struct {
	Move   *game.GameMove
	Winner string
}

func (o Outcome) Over() bool {
	return o.Winner != ""
}

var (
	ErrUnauthorized = errors.New("unauthorized")     // 401
	ErrNotFound     = errors.New("match not found")  // 404
	ErrRejected     = errors.New("move rejected")    // 406
	ErrServer       = errors.New("match server error")
)
