package game

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

const wireSnapshot = `{
	"tour": 3,
	"joueurs": [
		{"nom": "alice", "murs": 9, "position": [5, 2]},
		{"nom": "bob", "murs": 8, "position": [5, 8]}
	],
	"murs": {
		"horizontaux": [[4, 4]],
		"verticaux": [[6, 5], [2, 2]]
	}
}`

func TestSnapshotWireFormat(t *testing.T) {
	var s Snapshot
	require.NoError(t, json.Unmarshal([]byte(wireSnapshot), &s))

	gs, err := FromSnapshot(s)
	require.NoError(t, err)

	require.Equal(t, 3, gs.Turn)
	require.Equal(t, Player{Name: "bob", Walls: 8, Position: Pos(5, 8)}, gs.Players[1])
	require.Equal(t, []Position{Pos(4, 4)}, gs.Walls.Horizontal)
	require.Equal(t, []Position{Pos(6, 5), Pos(2, 2)}, gs.Walls.Vertical)

	out, err := json.Marshal(gs.Snapshot())
	require.NoError(t, err)
	require.JSONEq(t, wireSnapshot, string(out), "Snapshot should encode back to the wire format")
}

func TestPositionRejectsMalformedJSON(t *testing.T) {
	var p Position
	require.Error(t, json.Unmarshal([]byte(`[1, 2, 3]`), &p))
	require.Error(t, json.Unmarshal([]byte(`"a"`), &p))
}

func TestFromSnapshotCopiesInput(t *testing.T) {
	s := Snapshot{
		Turn: 1,
		Players: [2]PlayerSnapshot{
			{Name: "alice", Walls: 10, Position: Pos(5, 1)},
			{Name: "bob", Walls: 10, Position: Pos(5, 9)},
		},
		Walls: WallSet{Horizontal: []Position{Pos(2, 2)}},
	}
	gs, err := FromSnapshot(s)
	require.NoError(t, err)

	s.Walls.Horizontal[0] = Pos(7, 7)
	require.Equal(t, Pos(2, 2), gs.Walls.Horizontal[0], "State should not alias the caller's walls")

	out := gs.Snapshot()
	out.Walls.Horizontal[0] = Pos(3, 3)
	out.Players[0].Walls = 0
	require.Equal(t, Pos(2, 2), gs.Walls.Horizontal[0], "Snapshot should not alias the state")
	require.Equal(t, 10, gs.Players[0].Walls)
}

func TestFromSnapshotValidation(t *testing.T) {
	valid := func() Snapshot {
		return Snapshot{
			Turn: 1,
			Players: [2]PlayerSnapshot{
				{Name: "alice", Walls: 10, Position: Pos(5, 1)},
				{Name: "bob", Walls: 10, Position: Pos(5, 9)},
			},
		}
	}
	cases := map[string]func(s *Snapshot){
		"turn zero":             func(s *Snapshot) { s.Turn = 0 },
		"empty name":            func(s *Snapshot) { s.Players[0].Name = "" },
		"duplicate names":       func(s *Snapshot) { s.Players[1].Name = "alice" },
		"negative walls":        func(s *Snapshot) { s.Players[1].Walls = -1 },
		"too many walls":        func(s *Snapshot) { s.Players[0].Walls = 11 },
		"position off board":    func(s *Snapshot) { s.Players[0].Position = Pos(0, 1) },
		"shared cell":           func(s *Snapshot) { s.Players[1].Position = Pos(5, 1) },
		"wall anchor off board": func(s *Snapshot) { s.Walls.Vertical = []Position{Pos(1, 1)} },
		"overlapping walls":     func(s *Snapshot) { s.Walls.Horizontal = []Position{Pos(3, 4), Pos(4, 4)} },
		"crossing walls": func(s *Snapshot) {
			s.Walls.Horizontal = []Position{Pos(3, 4)}
			s.Walls.Vertical = []Position{Pos(4, 3)}
		},
		"same wall twice": func(s *Snapshot) { s.Walls.Vertical = []Position{Pos(6, 6), Pos(6, 6)} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := valid()
			mutate(&s)

			_, err := FromSnapshot(s)

			require.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}

	t.Run("walls end to end", func(t *testing.T) {
		s := valid()
		s.Walls.Horizontal = []Position{Pos(3, 4), Pos(5, 4)}
		s.Walls.Vertical = []Position{Pos(5, 5), Pos(5, 7)}

		_, err := FromSnapshot(s)

		require.NoError(t, err)
	})
}

func TestCopyIsIndependent(t *testing.T) {
	gs := newTestState(t)
	require.NoError(t, gs.PlaceWall("alice", Pos(3, 3), WallHorizontal))

	cp := gs.Copy()
	if !reflect.DeepEqual(gs, cp) {
		t.Fatalf("expected an identical copy, got %+v", cp)
	}

	require.NoError(t, cp.PlaceWall("bob", Pos(6, 6), WallHorizontal))
	require.NoError(t, cp.MoveToken("alice", Pos(5, 2)))

	require.Equal(t, []Position{Pos(3, 3)}, gs.Walls.Horizontal, "Original walls should not change")
	require.Equal(t, Pos(5, 1), gs.Players[0].Position)
	require.Equal(t, 10, gs.Players[1].Walls)
}

func TestSeats(t *testing.T) {
	gs := newTestState(t)

	require.Equal(t, [2]string{"alice", "bob"}, gs.Seats())
	opponent, err := gs.Opponent("bob")
	require.NoError(t, err)
	require.Equal(t, "alice", opponent)
	_, err = gs.Opponent("carol")
	require.ErrorIs(t, err, ErrInvalidPlayer)
}
