package game

import (
	"fmt"

	"quoridor/meta"
)

// Snapshot is the external representation of a game, as exchanged with the
// match server and consumed by renderers.
type Snapshot struct {
	Turn    int               `json:"tour"`
	Players [2]PlayerSnapshot `json:"joueurs"`
	Walls   WallSet           `json:"murs"`
}

type PlayerSnapshot struct {
	Name     string   `json:"nom"`
	Walls    int      `json:"murs"`
	Position Position `json:"position"`
}

// Validate checks the bounds a snapshot must respect before it can seed a
// GameState. Walls must not overlap or cross one another.
func (s Snapshot) Validate() error {
	if s.Turn < 1 {
		return fmt.Errorf("%w: turn %d", ErrInvalidSnapshot, s.Turn)
	}
	for i, p := range s.Players {
		if p.Name == "" {
			return fmt.Errorf("%w: player %d has no name", ErrInvalidSnapshot, i+1)
		}
		if p.Walls < 0 || p.Walls > meta.WALLS {
			return fmt.Errorf("%w: player %s has %d walls", ErrInvalidSnapshot, p.Name, p.Walls)
		}
		if !p.Position.OnBoard() {
			return fmt.Errorf("%w: player %s at %s", ErrInvalidSnapshot, p.Name, p.Position)
		}
	}
	if s.Players[0].Name == s.Players[1].Name {
		return fmt.Errorf("%w: both players are named %s", ErrInvalidSnapshot, s.Players[0].Name)
	}
	if s.Players[0].Position == s.Players[1].Position {
		return fmt.Errorf("%w: both players at %s", ErrInvalidSnapshot, s.Players[0].Position)
	}
	for _, w := range s.Walls.Horizontal {
		if !InBounds(WallHorizontal, w) {
			return fmt.Errorf("%w: horizontal wall at %s", ErrInvalidSnapshot, w)
		}
	}
	for _, w := range s.Walls.Vertical {
		if !InBounds(WallVertical, w) {
			return fmt.Errorf("%w: vertical wall at %s", ErrInvalidSnapshot, w)
		}
	}
	var placed WallSet
	for _, kind := range []MoveKind{WallHorizontal, WallVertical} {
		anchors := s.Walls.Horizontal
		if kind == WallVertical {
			anchors = s.Walls.Vertical
		}
		for _, w := range anchors {
			if placed.Conflicts(kind, w) {
				return fmt.Errorf("%w: %s wall at %s overlaps another wall", ErrInvalidSnapshot, kind, w)
			}
			placed.add(kind, w)
		}
	}
	return nil
}
