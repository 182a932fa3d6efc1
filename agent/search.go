package agent

import (
	"context"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"
)

type searchAgent struct {
	minimax *searcher.Minimax
}

// NewSearchAgent returns an agent playing the minimax search's choice.
func NewSearchAgent(minimax *searcher.Minimax) Agent {
	return searchAgent{minimax: minimax}
}

func (a searchAgent) FindMove(ctx context.Context, state *game.GameState, player string) (game.GameMove, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, err
	}
	return a.minimax.FindMove(state, player)
}
