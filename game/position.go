package game

import (
	"encoding/json"
	"fmt"

	"quoridor/meta"
)

// Position is a board cell, or a wall anchor, in 1-based coordinates.
// It is encoded as a two-element JSON array [x, y].
type Position struct {
	X int
	Y int
}

// Pos is a shorthand constructor.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// OnBoard reports whether the position is a cell of the 9x9 grid.
func (p Position) OnBoard() bool {
	return p.X >= 1 && p.X <= meta.BOARD_SIZE && p.Y >= 1 && p.Y <= meta.BOARD_SIZE
}

func (p Position) add(d direction) Position {
	return Position{X: p.X + d.dx, Y: p.Y + d.dy}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var xy []int
	if err := json.Unmarshal(data, &xy); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("position: expected [x, y], got %d values", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

type direction struct {
	dx, dy int
}

// Fixed iteration order: toward row 9, toward row 1, left, right.
var directions = [4]direction{
	{dx: 0, dy: 1},
	{dx: 0, dy: -1},
	{dx: -1, dy: 0},
	{dx: 1, dy: 0},
}

func (d direction) perpendicular() [2]direction {
	if d.dx == 0 {
		return [2]direction{{dx: -1, dy: 0}, {dx: 1, dy: 0}}
	}
	return [2]direction{{dx: 0, dy: 1}, {dx: 0, dy: -1}}
}
