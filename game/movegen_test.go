package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("opening position", func(t *testing.T) {
		gs := newTestState(t)

		moves := gs.LegalMoves("alice")

		// 3 steps, 8x7 horizontal anchors, 7x7 vertical anchors.
		require.Len(t, moves, 3+56+49)
		require.Equal(t, []GameMove{
			{Kind: Step, Position: Pos(5, 2)},
			{Kind: Step, Position: Pos(4, 1)},
			{Kind: Step, Position: Pos(6, 1)},
		}, moves[:3], "Token moves come first, in direction order")
		require.Equal(t, GameMove{Kind: WallHorizontal, Position: Pos(1, 2)}, moves[3])
	})

	t.Run("no walls left", func(t *testing.T) {
		gs := newTestState(t)
		gs.Players[1].Walls = 0

		for _, move := range gs.LegalMoves("bob") {
			require.Equal(t, Step, move.Kind)
		}
	})

	t.Run("conflicting anchors are skipped", func(t *testing.T) {
		gs := newTestState(t)
		require.NoError(t, gs.PlaceWall("alice", Pos(3, 4), WallHorizontal))

		moves := gs.LegalMoves("bob")

		require.NotContains(t, moves, GameMove{Kind: WallHorizontal, Position: Pos(3, 4)})
		require.NotContains(t, moves, GameMove{Kind: WallHorizontal, Position: Pos(2, 4)})
		require.NotContains(t, moves, GameMove{Kind: WallHorizontal, Position: Pos(4, 4)})
		require.NotContains(t, moves, GameMove{Kind: WallVertical, Position: Pos(4, 3)})
		require.Contains(t, moves, GameMove{Kind: WallHorizontal, Position: Pos(5, 4)})
	})

	t.Run("isolating walls are skipped", func(t *testing.T) {
		gs := newTestState(t)
		gs.Players[0].Position = Pos(1, 5)
		require.NoError(t, gs.PlaceWall("alice", Pos(1, 4), WallHorizontal))
		require.NoError(t, gs.PlaceWall("alice", Pos(1, 6), WallHorizontal))

		moves := gs.LegalMoves("bob")

		require.NotContains(t, moves, GameMove{Kind: WallVertical, Position: Pos(2, 4)})
		require.NotContains(t, moves, GameMove{Kind: WallVertical, Position: Pos(3, 4)})
		require.Contains(t, moves, GameMove{Kind: WallVertical, Position: Pos(4, 4)})
	})

	t.Run("every generated move is accepted by ApplyMove", func(t *testing.T) {
		gs := newTestState(t)
		require.NoError(t, gs.PlaceWall("bob", Pos(4, 2), WallHorizontal))
		require.NoError(t, gs.PlaceWall("alice", Pos(6, 7), WallVertical))
		before := gs.Snapshot()

		for _, move := range gs.LegalMoves("alice") {
			_, err := gs.Copy().ApplyMove("alice", move)
			require.NoError(t, err, "Generated move %s should be legal", move)
		}
		require.Equal(t, before, gs.Snapshot(), "Generation should not mutate the state")
	})

	t.Run("no moves once the game is over", func(t *testing.T) {
		gs := newTestState(t)
		gs.Players[1].Position = Pos(5, 1)
		gs.Players[0].Position = Pos(5, 2)

		require.Nil(t, gs.LegalMoves("alice"))
		require.Nil(t, gs.LegalMoves("carol"))
	})
}

func TestFallbackMove(t *testing.T) {
	t.Run("straight ahead on an open board", func(t *testing.T) {
		gs := newTestState(t)

		move, ok := gs.FallbackMove("alice")

		require.True(t, ok)
		require.Equal(t, GameMove{Kind: Step, Position: Pos(5, 2)}, move)
	})

	t.Run("around a wall toward the nearest goal cell", func(t *testing.T) {
		gs := newTestState(t)
		require.NoError(t, gs.PlaceWall("bob", Pos(5, 2), WallHorizontal))

		move, ok := gs.FallbackMove("alice")

		require.True(t, ok)
		require.Equal(t, GameMove{Kind: Step, Position: Pos(4, 1)}, move)
	})

	t.Run("second seat heads for row 1", func(t *testing.T) {
		gs := newTestState(t)

		move, ok := gs.FallbackMove("bob")

		require.True(t, ok)
		require.Equal(t, GameMove{Kind: Step, Position: Pos(5, 8)}, move)
	})

	t.Run("unknown player", func(t *testing.T) {
		gs := newTestState(t)

		_, ok := gs.FallbackMove("carol")

		require.False(t, ok)
	})
}

func TestEvaluateDistance(t *testing.T) {
	t.Run("symmetric opening", func(t *testing.T) {
		gs := newTestState(t)

		require.Equal(t, 0.0, EvaluateDistance(gs, "alice"))
	})

	t.Run("one step ahead", func(t *testing.T) {
		gs := newTestState(t)
		// Separate columns so that no shortest path jumps a token.
		gs.Players[0].Position = Pos(1, 2)
		gs.Players[1].Position = Pos(9, 9)

		require.Equal(t, 1.0, EvaluateDistance(gs, "alice"))
		require.Equal(t, -1.0, EvaluateDistance(gs, "bob"))
	})

	t.Run("jump shortens the opponent's path", func(t *testing.T) {
		gs := newTestState(t)
		require.NoError(t, gs.MoveToken("alice", Pos(5, 2)))

		require.Equal(t, 7, gs.DistanceToGoal(0))
		require.Equal(t, 7, gs.DistanceToGoal(1), "Bob jumps from (5, 3) over alice to (5, 1)")
		require.Equal(t, 0.0, EvaluateDistance(gs, "alice"))
	})

	t.Run("wall lengthens the opponent's path", func(t *testing.T) {
		gs := newTestState(t)
		gs.Players[1].Position = Pos(9, 9)
		require.NoError(t, gs.PlaceWall("bob", Pos(4, 5), WallHorizontal))

		require.Equal(t, 9, gs.DistanceToGoal(0))
		require.Equal(t, 8, gs.DistanceToGoal(1))
		require.Equal(t, 1.0, EvaluateDistance(gs, "bob"))
		require.Equal(t, -1.0, EvaluateDistance(gs, "alice"))
	})

	t.Run("wall on the opening rows slows both sides", func(t *testing.T) {
		gs := newTestState(t)
		require.NoError(t, gs.PlaceWall("alice", Pos(4, 9), WallHorizontal))

		require.Equal(t, 9, gs.DistanceToGoal(0))
		require.Equal(t, 9, gs.DistanceToGoal(1))
		require.Equal(t, 0.0, EvaluateDistance(gs, "alice"))
	})

	t.Run("unreachable goal is infinitely bad", func(t *testing.T) {
		gs := newTestState(t)
		gs.Players[0].Position = Pos(1, 1)
		// Built directly: PlaceWall would refuse the enclosure.
		gs.Walls = WallSet{
			Horizontal: []Position{Pos(1, 2)},
			Vertical:   []Position{Pos(3, 1)},
		}

		require.Equal(t, math.Inf(-1), EvaluateDistance(gs, "alice"))
		require.Equal(t, math.Inf(1), EvaluateDistance(gs, "bob"))
	})

	t.Run("goal row is distance zero", func(t *testing.T) {
		gs := newTestState(t)
		gs.Players[0].Position = Pos(2, 9)

		require.Equal(t, 0, gs.DistanceToGoal(0))
	})
}
