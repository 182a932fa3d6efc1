package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"quoridor/experiments/metrics"
	"quoridor/game"
)

var (
	ErrNoInput      = errors.New("no input")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	kindPrompt     = "Quel coup voulez-vous jouer? ('D', 'MH', 'MV') : "
	positionPrompt = "Donnez la position du coup à jouer ('x, y') : "
)

type interactiveAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewInteractiveAgent returns an agent asking a human for each move: first
// the kind, then the position. A malformed answer is returned as an
// ErrInvalidInput error and the caller decides whether to ask again.
func NewInteractiveAgent(in io.Reader, out io.Writer) Agent {
	return &interactiveAgent{in: bufio.NewScanner(in), out: out}
}

func (a *interactiveAgent) FindMove(ctx context.Context, state *game.GameState, player string) (game.GameMove, metrics.SearchMetric, error) {
	if _, err := state.Seat(player); err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, err
	}

	answer, err := a.ask(ctx, kindPrompt)
	if err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, err
	}
	kind := game.MoveKind(strings.ToUpper(answer))
	if !kind.Valid() {
		return game.GameMove{}, metrics.SearchMetric{}, fmt.Errorf("%w: %w: %q", ErrInvalidInput, game.ErrInvalidMoveType, answer)
	}

	answer, err = a.ask(ctx, positionPrompt)
	if err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, err
	}
	position, err := parsePosition(answer)
	if err != nil {
		return game.GameMove{}, metrics.SearchMetric{}, err
	}
	return game.GameMove{Kind: kind, Position: position}, metrics.SearchMetric{}, nil
}

func (a *interactiveAgent) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(a.out, prompt); err != nil {
		return "", err
	}
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// parsePosition reads "x, y" with any spacing.
func parsePosition(s string) (game.Position, error) {
	parts := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	if len(parts) != 2 {
		return game.Position{}, fmt.Errorf("%w: position %q, expected 'x, y'", ErrInvalidInput, s)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return game.Position{}, fmt.Errorf("%w: position %q: %w", ErrInvalidInput, s, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return game.Position{}, fmt.Errorf("%w: position %q: %w", ErrInvalidInput, s, err)
	}
	p := game.Pos(x, y)
	if !p.OnBoard() {
		return game.Position{}, fmt.Errorf("%w: %w: %s", ErrInvalidInput, game.ErrOutOfBounds, p)
	}
	return p, nil
}
