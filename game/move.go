package game

import "fmt"

// MoveKind is the tag exchanged with the match server.
type MoveKind string

const (
	Step           MoveKind = "D"
	WallHorizontal MoveKind = "MH"
	WallVertical   MoveKind = "MV"
)

// Valid reports whether the kind is one of the three known tags.
func (k MoveKind) Valid() bool {
	switch k {
	case Step, WallHorizontal, WallVertical:
		return true
	}
	return false
}

// IsWall reports whether the kind places a wall.
func (k MoveKind) IsWall() bool {
	return k == WallHorizontal || k == WallVertical
}

// GameMove represents a move in the game: a token step (or jump) to a cell,
// or a wall anchored at a position.
type GameMove struct {
	Kind     MoveKind `json:"coup"`
	Position Position `json:"position"`
}

func (m GameMove) String() string {
	return fmt.Sprintf("%s %s", m.Kind, m.Position)
}
