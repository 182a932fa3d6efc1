package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"quoridor/agent"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/render"
)

type LocalOption func(e *Local)

// Local plays a match between two in-process agents.
type Local struct {
	State    *game.GameState
	Agents   [2]agent.Agent
	maxTurns int
	renderer render.Renderer
	out      io.Writer
}

func WithMaxTurns(turns int) LocalOption {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithRenderer draws the board to out after every move.
func WithRenderer(renderer render.Renderer, out io.Writer) LocalOption {
	return func(e *Local) {
		e.renderer = renderer
		e.out = out
	}
}

func LocalEngine(state *game.GameState, agents [2]agent.Agent, options ...LocalOption) *Local {
	e := &Local{
		State:    state,
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a winner is found. A match still
// running after the turn limit ends without a winner.
func (e *Local) Run(ctx context.Context) (string, metrics.GameMetric, error) {
	seats := e.State.Seats()
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	log.Info().Msgf("%s is starting against %s", seats[0], seats[1])

	seat := 0
	for e.State.Winner() == "" && e.State.Turn <= e.maxTurns {
		player := seats[seat]

		move, searchMetric, err := e.Agents[seat].FindMove(ctx, e.State.Copy(), player)
		if err != nil {
			return "", gameMetric, fmt.Errorf("%s found no move: %w", player, err)
		}
		if _, err := e.State.ApplyMove(player, move); err != nil {
			return "", gameMetric, fmt.Errorf("%s played %s: %w", player, move, err)
		}
		log.Debug().Msgf("turn %d: %s played %s", e.State.Turn, player, move)

		gameMetric.TotalMoves++
		gameMetric.Moves = append(gameMetric.Moves, metrics.MoveMetric{
			Step:         gameMetric.TotalMoves,
			Player:       seat,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		if e.renderer != nil {
			if err := e.renderer.Render(e.out, e.State.Snapshot()); err != nil {
				return "", gameMetric, err
			}
		}
		seat = 1 - seat
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	if winner != "" {
		log.Info().Msgf("%s won after %d moves", winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}
	return winner, gameMetric, nil
}
