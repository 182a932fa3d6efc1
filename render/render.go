package render

import (
	"io"

	"quoridor/game"
)

// Renderer draws a snapshot of a match. Renderers never see the game state
// itself, only its external representation.
type Renderer interface {
	Render(w io.Writer, s game.Snapshot) error
}
