package searcher

import (
	"sync"

	"github.com/rs/zerolog/log"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search with alpha-beta pruning. A
// Minimax holds configuration only and may be shared between goroutines.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	collect    bool
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines searches the top ply with the given number of goroutines.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.collect = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      meta.DEPTH,
		goroutines: meta.GO_ROUTINES,
		evaluate:   game.EvaluateDistance,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove returns the best move for player in state. The state is never
// modified; the caller applies the move.
func (m *Minimax) FindMove(state game.State, player string) (game.GameMove, metrics.SearchMetric, error) {
	collector := metrics.NewDummyCollector()
	if m.collect {
		collector = metrics.NewCollector()
	}
	collector.Start(m.goroutines, m.depth)

	var best *game.GameMove
	if m.goroutines > 1 {
		best = m.searchRoot(state, player, collector)
	} else {
		_, best = m.search(state, player, player, m.depth, LOSS, WIN, collector)
	}
	metric := collector.Complete()

	if best != nil {
		log.Debug().Msgf("search for %s picked %s (%d nodes)", player, best, metric.Nodes)
		return *best, metric, nil
	}

	if f, ok := state.(game.Fallback); ok {
		if move, ok := f.FallbackMove(player); ok {
			log.Debug().Msgf("search for %s found nothing, falling back to %s", player, move)
			return move, metric, nil
		}
	}
	return game.GameMove{}, metric, ErrNoMove
}

// search returns the value of state for player, together with the move
// reaching it when state is not a leaf. mover is the player to act.
func (m *Minimax) search(state game.State, player, mover string, depth int, alpha, beta float64, collector metrics.Collector) (float64, *game.GameMove) {
	collector.AddNode()
	if depth == 0 || state.Winner() != "" {
		collector.AddLeaf()
		return m.evaluate(state, player), nil
	}
	moves := state.LegalMoves(mover)
	if len(moves) == 0 {
		collector.AddLeaf()
		return m.evaluate(state, player), nil
	}

	maximizing := mover == player
	var best float64
	var bestMove *game.GameMove
	for i := range moves {
		value, ok := m.evaluateMove(state, player, mover, moves[i], depth, alpha, beta, collector)
		if !ok {
			continue
		}

		// Strict comparison: the first best move wins ties.
		if maximizing {
			if bestMove == nil || value > best {
				best, bestMove = value, &moves[i]
			}
			alpha = max(alpha, best)
		} else {
			if bestMove == nil || value < best {
				best, bestMove = value, &moves[i]
			}
			beta = min(beta, best)
		}
		if alpha >= beta {
			collector.AddCutoff()
			break
		}
	}

	if bestMove == nil { // Every candidate was rejected
		collector.AddLeaf()
		return m.evaluate(state, player), nil
	}
	return best, bestMove
}

// evaluateMove plays move on a copy of state and searches the result. It
// reports false when the move is rejected.
func (m *Minimax) evaluateMove(state game.State, player, mover string, move game.GameMove, depth int, alpha, beta float64, collector metrics.Collector) (float64, bool) {
	next, err := state.Play(mover, move)
	if err != nil {
		log.Trace().Err(err).Msgf("skipping %s for %s", move, mover)
		return 0, false
	}

	if next.Winner() == mover {
		collector.AddNode()
		collector.AddLeaf()
		if mover == player {
			return WIN, true
		}
		return LOSS, true
	}

	value, _ := m.search(next, player, opponentOf(state, mover), depth-1, alpha, beta, collector)
	return value, true
}

// searchRoot spreads the top-ply moves over the configured goroutines. Each
// move is searched with a full window so its value is exact, and the first
// best move in generation order is returned as in the sequential search.
func (m *Minimax) searchRoot(state game.State, player string, collector metrics.Collector) *game.GameMove {
	collector.AddNode()
	if state.Winner() != "" {
		return nil
	}
	moves := state.LegalMoves(player)

	values := make([]float64, len(moves))
	legal := make([]bool, len(moves))
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				values[i], legal[i] = m.evaluateMove(state, player, player, moves[i], m.depth, LOSS, WIN, collector)
			}
		}()
	}
	wg.Wait()

	best := -1
	for i := range moves {
		if legal[i] && (best < 0 || values[i] > values[best]) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return &moves[best]
}
