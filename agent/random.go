package agent

import (
	"context"
	"sync"

	"golang.org/x/exp/rand"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
)

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing a uniformly random legal move. Two
// agents with the same seed play the same games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state *game.GameState, player string) (game.GameMove, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, err
	}
	moves := state.LegalMoves(player)
	if len(moves) == 0 {
		return game.GameMove{}, metrics.SearchMetric{}, searcher.ErrNoMove
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
