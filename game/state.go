package game

import (
	"fmt"

	"quoridor/meta"
	"quoridor/utils"
)

// Player is one seat of the game.
type Player struct {
	Name     string
	Walls    int // Walls remaining
	Position Position
}

// GameState represents the authoritative state of a match. It is mutated in
// place by MoveToken, PlaceWall and ApplyMove; search works on copies.
type GameState struct {
	Players [2]Player
	Walls   WallSet
	Turn    int
}

// Start cells of each seat.
var startPositions = [2]Position{Pos(5, 1), Pos(5, meta.BOARD_SIZE)}

// New initializes a match with both tokens on their start cells.
func New(names [2]string, walls int) (*GameState, error) {
	s := Snapshot{Turn: 1}
	for i, name := range names {
		s.Players[i] = PlayerSnapshot{Name: name, Walls: walls, Position: startPositions[i]}
	}
	return FromSnapshot(s)
}

// FromSnapshot deep copies an external snapshot into a new GameState.
func FromSnapshot(s Snapshot) (*GameState, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	gs := &GameState{
		Walls: s.Walls.Copy(),
		Turn:  s.Turn,
	}
	for i, p := range s.Players {
		gs.Players[i] = Player{Name: p.Name, Walls: p.Walls, Position: p.Position}
	}
	return gs, nil
}

// Snapshot returns a copy of the state in its external representation.
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Turn:  gs.Turn,
		Walls: gs.Walls.Copy(),
	}
	for i, p := range gs.Players {
		s.Players[i] = PlayerSnapshot{Name: p.Name, Walls: p.Walls, Position: p.Position}
	}
	return s
}

// Copy returns an independent deep copy.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Players: gs.Players, // Player holds no references
		Walls:   gs.Walls.Copy(),
		Turn:    gs.Turn,
	}
}

// Seats returns the player names in turn order.
func (gs *GameState) Seats() [2]string {
	return [2]string{gs.Players[0].Name, gs.Players[1].Name}
}

// Seat returns the index of the named player.
func (gs *GameState) Seat(player string) (int, error) {
	seats := gs.Seats()
	seat := utils.FindIndex(seats[:], player)
	if seat < 0 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidPlayer, player)
	}
	return seat, nil
}

// Opponent returns the name of the other seat.
func (gs *GameState) Opponent(player string) (string, error) {
	seat, err := gs.Seat(player)
	if err != nil {
		return "", err
	}
	return gs.Players[1-seat].Name, nil
}

// Graph builds the reachability graph of the current configuration.
func (gs *GameState) Graph() *Graph {
	return BuildGraph(gs.positions(), gs.Walls)
}

func (gs *GameState) positions() [2]Position {
	return [2]Position{gs.Players[0].Position, gs.Players[1].Position}
}

// DistanceToGoal is the number of moves the seat needs to reach its goal
// row if the other token stood still, or -1 when the row is unreachable.
func (gs *GameState) DistanceToGoal(seat int) int {
	return distanceToGoal(gs.Graph(), gs.Players[seat].Position, seat)
}

func distanceToGoal(g *Graph, from Position, seat int) int {
	d := g.Distance(from, GoalOf(seat))
	if d < 0 {
		return -1
	}
	// The last edge enters the goal node, not a cell.
	return d - 1
}

// Winner returns the name of the winner, or "" while the game is running.
func (gs *GameState) Winner() string {
	if gs.Players[0].Position.Y == meta.BOARD_SIZE {
		return gs.Players[0].Name
	}
	if gs.Players[1].Position.Y == 1 {
		return gs.Players[1].Name
	}
	return ""
}

// Play applies a move to a copy of the state.
func (gs *GameState) Play(player string, move GameMove) (State, error) {
	next := gs.Copy()
	if _, err := next.ApplyMove(player, move); err != nil {
		return nil, err
	}
	return next, nil
}
