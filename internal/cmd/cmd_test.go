package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"quoridor/game"
)

const opening = `{
	"tour": 1,
	"joueurs": [
		{"nom": "alice", "murs": 10, "position": [5, 1]},
		{"nom": "bob", "murs": 10, "position": [5, 9]}
	],
	"murs": {"horizontaux": [], "verticaux": []}
}`

// execute runs the root command with an empty config file so the user's
// configuration never leaks into the tests.
func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0600))

	root := Root()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(in))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--config", path))
	err := root.Execute()
	return out.String(), err
}

func TestMoveCommand(t *testing.T) {
	t.Run("reads standard input", func(t *testing.T) {
		out, err := execute(t, opening, "move", "--depth", "1")

		require.NoError(t, err)
		var move game.GameMove
		require.NoError(t, json.Unmarshal([]byte(out), &move))
		require.Equal(t, game.GameMove{Kind: game.Step, Position: game.Pos(5, 2)}, move)
	})

	t.Run("reads a file for the second player", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte(opening), 0600))

		out, err := execute(t, "", "move", path, "--player", "bob", "--depth", "1")

		require.NoError(t, err)
		require.JSONEq(t, `{"coup": "D", "position": [5, 8]}`, out)
	})

	t.Run("malformed snapshot", func(t *testing.T) {
		_, err := execute(t, `{"tour": "un"}`, "move")

		require.Error(t, err)
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := execute(t, opening, "move", "--player", "carol", "--depth", "1")

		require.ErrorIs(t, err, game.ErrInvalidPlayer)
	})
}

func TestPlayCommand(t *testing.T) {
	t.Run("graphical rendering is refused", func(t *testing.T) {
		_, err := execute(t, "", "play", "alice", "--secret", "s", "--render", "graphical")

		require.Error(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := execute(t, "", "play", "alice")

		require.ErrorContains(t, err, "no secret configured for alice")
	})
}

func TestSelfPlayCommand(t *testing.T) {
	out, err := execute(t, "", "selfplay", "--depths", "0,1", "--games", "2", "--out", "")

	require.NoError(t, err)
	require.Contains(t, out, "agent1(random): ")
	require.Contains(t, out, "agent2(depth=1): ")
}
