package game

import "quoridor/meta"

// LegalMoves returns every move the player may make: token moves first, in
// graph order, then wall placements that PlaceWall accepts. It is meant for
// search only; ApplyMove validates independently.
func (gs *GameState) LegalMoves(player string) []GameMove {
	seat, err := gs.Seat(player)
	if err != nil || gs.Winner() != "" {
		return nil
	}

	var moves []GameMove
	for _, cell := range gs.Graph().Successors(gs.Players[seat].Position) {
		if cell.OnBoard() {
			moves = append(moves, GameMove{Kind: Step, Position: cell})
		}
	}

	if gs.Players[seat].Walls == 0 {
		return moves
	}
	for _, kind := range []MoveKind{WallHorizontal, WallVertical} {
		for x := 1; x <= meta.BOARD_SIZE-1; x++ {
			if kind == WallVertical && x == 1 {
				continue
			}
			for y := 2; y <= meta.BOARD_SIZE-1; y++ {
				at := Pos(x, y)
				if gs.Walls.Conflicts(kind, at) {
					continue
				}
				// Disposable copy, discarded whatever the outcome.
				if err := gs.Copy().PlaceWall(player, at, kind); err == nil {
					moves = append(moves, GameMove{Kind: kind, Position: at})
				}
			}
		}
	}
	return moves
}

// FallbackMove proposes the first step of the globally shortest path from the
// player's cell to any cell of its goal row.
func (gs *GameState) FallbackMove(player string) (GameMove, bool) {
	seat, err := gs.Seat(player)
	if err != nil || gs.Winner() != "" {
		return GameMove{}, false
	}
	g := gs.Graph()
	from := gs.Players[seat].Position
	row := meta.BOARD_SIZE
	if seat == 1 {
		row = 1
	}

	var best []Node
	for x := 1; x <= meta.BOARD_SIZE; x++ {
		path := g.Path(from, NodeOf(Pos(x, row)))
		if path != nil && (best == nil || len(path) < len(best)) {
			best = path
		}
	}
	if len(best) < 2 {
		return GameMove{}, false
	}
	next, _ := best[1].Position()
	return GameMove{Kind: Step, Position: next}, true
}
