package agent

import (
	"context"

	"quoridor/experiments/metrics"
	"quoridor/game"
)

type Agent interface {
	// FindMove returns the move player should make in state, and the search
	// metrics when the agent collects any. The state is not modified.
	FindMove(ctx context.Context, state *game.GameState, player string) (game.GameMove, metrics.SearchMetric, error)
}
