package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"quoridor/agent"
	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/meta"
	"quoridor/searcher"
)

const NumGames = 4 // Per match up

type Results struct {
	Dir   string // Empty when nothing was written
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// Wins counts the games won by each agent.
func (r Results) Wins() map[int]int {
	wins := make(map[int]int)
	for _, g := range r.Games {
		if g.WinnerAgent >= 0 {
			wins[g.WinnerAgent]++
		}
	}
	return wins
}

// RunSelfPlay plays every pair of configs against each other, games times per
// pair, alternating the starting seat. Records are written under dir unless
// it is empty.
func RunSelfPlay(ctx context.Context, configs []metrics.AgentConfig, games int, dir string) (Results, error) {
	if len(configs) < 2 {
		return Results{}, fmt.Errorf("self-play needs at least two agents, got %d", len(configs))
	}
	if games <= 0 {
		games = NumGames
	}

	// Each matchup pairs two distinct configs
	matchUps := [][2]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}

	var results Results
	log.Info().Msgf("starting self-play with %d matchups of %d games...", len(matchUps), games)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			seats := matchUp
			if i%2 == 1 {
				seats = [2]metrics.AgentConfig{matchUp[1], matchUp[0]}
			}

			id := len(results.Games) + 1
			record, moves, err := runGame(ctx, id, seats)
			if err != nil {
				return results, fmt.Errorf("game %d: %w", id, err)
			}
			results.Games = append(results.Games, record)
			for _, mm := range moves {
				results.Moves = append(results.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, record.Winner)
		}
	}
	log.Info().Msg("completed self-play")

	if dir == "" {
		return results, nil
	}
	dir, err := store(dir, configs, results)
	results.Dir = dir
	return results, err
}

// runGame executes a single game between two agents
func runGame(ctx context.Context, id int, seats [2]metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveMetric, error) {
	names := [2]string{
		fmt.Sprintf("1-%s", seats[0]),
		fmt.Sprintf("2-%s", seats[1]),
	}
	state, err := game.New(names, meta.WALLS)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	agents := [2]agent.Agent{
		createAgent(seats[0], uint64(id)),
		createAgent(seats[1], uint64(id)),
	}

	winner, gameMetric, err := engine.LocalEngine(state, agents).Run(ctx)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:          id,
		Agent1:      seats[0].ID,
		Agent2:      seats[1].ID,
		WinnerAgent: -1,
		GameMetric:  gameMetric,
	}
	for seat, name := range names {
		if winner == name {
			record.WinnerAgent = seats[seat].ID
		}
	}
	return record, gameMetric.Moves, nil
}

func createAgent(config metrics.AgentConfig, offset uint64) agent.Agent {
	if config.Depth == 0 {
		return agent.NewRandomAgent(config.Seed + offset)
	}
	options := []searcher.Option{
		searcher.WithDepth(config.Depth),
		searcher.WithMetrics(),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return agent.NewSearchAgent(searcher.NewMinimax(options...))
}

func store(dir string, configs []metrics.AgentConfig, results Results) (string, error) {
	writer, err := metrics.NewWriter(dir, "selfplay")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return writer.Dir(), fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(results.Games); err != nil {
		return writer.Dir(), fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return writer.Dir(), fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
