package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"quoridor/experiments/metrics"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunSelfPlay(t *testing.T) {
	t.Run("alternates seats and stores records", func(t *testing.T) {
		configs := []metrics.AgentConfig{
			{ID: 1, Seed: 3},
			{ID: 2, Depth: 1},
		}
		dir := t.TempDir()

		results, err := RunSelfPlay(context.Background(), configs, 2, dir)

		require.NoError(t, err)
		require.Len(t, results.Games, 2)
		require.Equal(t, 1, results.Games[0].Agent1)
		require.Equal(t, 2, results.Games[1].Agent1, "Second game should swap seats")
		for _, g := range results.Games {
			require.Equal(t, g.TotalMoves, len(g.Moves))
		}
		require.NotEmpty(t, results.Moves)
		require.Equal(t, 1, results.Moves[0].Game)

		require.DirExists(t, results.Dir)
		configRows := readCSV(t, filepath.Join(results.Dir, "agent_configs.csv"))
		require.Equal(t, []string{"id", "depth", "goroutines", "seed"}, configRows[0])
		require.Len(t, configRows, 3)
		require.Len(t, readCSV(t, filepath.Join(results.Dir, "game_records.csv")), 3)
		require.Len(t, readCSV(t, filepath.Join(results.Dir, "move_records.csv")), len(results.Moves)+1)
	})

	t.Run("search beats the random baseline", func(t *testing.T) {
		configs := []metrics.AgentConfig{
			{ID: 1, Seed: 11},
			{ID: 2, Depth: 1},
		}

		results, err := RunSelfPlay(context.Background(), configs, 2, "")

		require.NoError(t, err)
		require.Empty(t, results.Dir)
		require.GreaterOrEqual(t, results.Wins()[2], 1)
		require.Zero(t, results.Wins()[3], "Only known agents can win")
	})

	t.Run("needs two agents", func(t *testing.T) {
		_, err := RunSelfPlay(context.Background(), []metrics.AgentConfig{{ID: 1}}, 1, "")

		require.Error(t, err)
	})
}
