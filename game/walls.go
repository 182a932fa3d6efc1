package game

import (
	"golang.org/x/exp/slices"

	"quoridor/meta"
)

// WallSet holds the anchors of every wall on the board, in placement order.
//
// A horizontal wall at (x, y) blocks the edges between rows y-1 and y for
// columns x and x+1. A vertical wall at (x, y) blocks the edges between
// columns x-1 and x for rows y and y+1.
type WallSet struct {
	Horizontal []Position `json:"horizontaux"`
	Vertical   []Position `json:"verticaux"`
}

// Copy returns a WallSet that shares no memory with ws.
func (ws WallSet) Copy() WallSet {
	return WallSet{
		Horizontal: append(make([]Position, 0, len(ws.Horizontal)+1), ws.Horizontal...),
		Vertical:   append(make([]Position, 0, len(ws.Vertical)+1), ws.Vertical...),
	}
}

// Len is the number of walls on the board.
func (ws WallSet) Len() int {
	return len(ws.Horizontal) + len(ws.Vertical)
}

// InBounds reports whether a wall of the given kind anchored at p blocks two
// edges that both lie on the board.
func InBounds(kind MoveKind, p Position) bool {
	switch kind {
	case WallHorizontal:
		return p.X >= 1 && p.X <= meta.BOARD_SIZE-1 && p.Y >= 2 && p.Y <= meta.BOARD_SIZE
	case WallVertical:
		return p.X >= 2 && p.X <= meta.BOARD_SIZE && p.Y >= 1 && p.Y <= meta.BOARD_SIZE-1
	}
	return false
}

// Conflicts reports whether a new wall would overlap or cross a wall already
// in the set.
func (ws WallSet) Conflicts(kind MoveKind, p Position) bool {
	switch kind {
	case WallHorizontal:
		return slices.Contains(ws.Horizontal, p) ||
			slices.Contains(ws.Horizontal, Pos(p.X-1, p.Y)) ||
			slices.Contains(ws.Horizontal, Pos(p.X+1, p.Y)) ||
			slices.Contains(ws.Vertical, Pos(p.X+1, p.Y-1))
	case WallVertical:
		return slices.Contains(ws.Vertical, p) ||
			slices.Contains(ws.Vertical, Pos(p.X, p.Y-1)) ||
			slices.Contains(ws.Vertical, Pos(p.X, p.Y+1)) ||
			slices.Contains(ws.Horizontal, Pos(p.X-1, p.Y+1))
	}
	return false
}

func (ws *WallSet) add(kind MoveKind, p Position) {
	if kind == WallHorizontal {
		ws.Horizontal = append(ws.Horizontal, p)
	} else {
		ws.Vertical = append(ws.Vertical, p)
	}
}

// removeLast undoes the latest add of the given kind.
func (ws *WallSet) removeLast(kind MoveKind) {
	if kind == WallHorizontal {
		ws.Horizontal = ws.Horizontal[:len(ws.Horizontal)-1]
	} else {
		ws.Vertical = ws.Vertical[:len(ws.Vertical)-1]
	}
}
