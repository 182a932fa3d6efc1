package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"quoridor/agent"
	"quoridor/communication"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/render"
)

// Remote plays the first seat of a match hosted by a match server.
type Remote struct {
	transport communication.Transport
	agent     agent.Agent
	renderer  render.Renderer
	out       io.Writer

	ID    string
	State *game.GameState
}

func RemoteEngine(transport communication.Transport, agent agent.Agent, renderer render.Renderer, out io.Writer) *Remote {
	return &Remote{
		transport: transport,
		agent:     agent,
		renderer:  renderer,
		out:       out,
	}
}

// Run creates a match and plays it to the end. Every move is validated
// locally before it is sent, and every reply is applied locally, so State
// mirrors the server.
func (e *Remote) Run(ctx context.Context) (string, metrics.GameMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}

	id, snapshot, err := e.transport.Create(ctx)
	if err != nil {
		return "", gameMetric, fmt.Errorf("failed to create match: %w", err)
	}
	if e.State, err = game.FromSnapshot(snapshot); err != nil {
		return "", gameMetric, err
	}
	e.ID = id
	seats := e.State.Seats()
	log.Info().Msgf("match %s created: %s against %s", id, seats[0], seats[1])

	for {
		if err := e.renderer.Render(e.out, e.State.Snapshot()); err != nil {
			return "", gameMetric, err
		}

		move, searchMetric, err := e.play(ctx, seats[0])
		if err != nil {
			return "", gameMetric, err
		}
		gameMetric.TotalMoves++
		gameMetric.Moves = append(gameMetric.Moves, metrics.MoveMetric{
			Step:         gameMetric.TotalMoves,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		outcome, err := e.transport.Submit(ctx, id, move)
		if err != nil {
			return "", gameMetric, fmt.Errorf("failed to submit %s: %w", move, err)
		}
		if outcome.Over() {
			return e.finish(ctx, outcome.Winner, gameMetric)
		}

		if _, err := e.State.ApplyMove(seats[1], *outcome.Move); err != nil {
			return "", gameMetric, fmt.Errorf("server played %s: %w", outcome.Move, err)
		}
		gameMetric.TotalMoves++
		log.Debug().Msgf("%s replied %s", seats[1], outcome.Move)
	}
}

// play asks the agent for a move and applies it locally. Invalid input and
// illegal moves are reported to the player, who gets MaxAttempts tries.
func (e *Remote) play(ctx context.Context, player string) (game.GameMove, metrics.SearchMetric, error) {
	var err error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		var move game.GameMove
		var searchMetric metrics.SearchMetric
		move, searchMetric, err = e.agent.FindMove(ctx, e.State.Copy(), player)
		if err == nil {
			if _, err = e.State.ApplyMove(player, move); err == nil {
				return move, searchMetric, nil
			}
		} else if !errors.Is(err, agent.ErrInvalidInput) {
			return game.GameMove{}, searchMetric, err
		}
		fmt.Fprintf(e.out, "%v\n", err)
	}
	return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("no legal move after %d attempts: %w", MaxAttempts, err)
}

func (e *Remote) finish(ctx context.Context, winner string, gameMetric metrics.GameMetric) (string, metrics.GameMetric, error) {
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	snapshot, err := e.transport.Fetch(ctx, e.ID)
	if err != nil {
		return winner, gameMetric, fmt.Errorf("failed to fetch final state: %w", err)
	}
	if final, err := game.FromSnapshot(snapshot); err == nil {
		e.State = final
	}
	if err := e.renderer.Render(e.out, snapshot); err != nil {
		return winner, gameMetric, err
	}
	fmt.Fprintf(e.out, "Le gagnant est %s\n", winner)
	log.Info().Msgf("match %s won by %s", e.ID, winner)
	return winner, gameMetric, nil
}
