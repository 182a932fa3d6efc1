package engine

import (
	"context"

	"quoridor/experiments/metrics"
)

// Attempts a player gets to submit a legal move before the engine gives up.
const MaxAttempts = 3

type Engine interface {
	// Run plays a match till there's a winner or the turn limit is reached
	Run(ctx context.Context) (winner string, gameMetric metrics.GameMetric, err error)
}
