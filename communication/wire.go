package communication

import "quoridor/game"

// MatchOver is the value of MoveResponse.Match once a winner exists.
const MatchOver = "terminée"

// MatchResponse is the body of match creation and retrieval.
type MatchResponse struct {
	ID    string        `json:"id"`
	State game.Snapshot `json:"état"`
}

// MoveResponse carries either the server's move or the end of the match.
type MoveResponse struct {
	Kind     game.MoveKind  `json:"coup,omitempty"`
	Position *game.Position `json:"position,omitempty"`
	Match    string         `json:"partie,omitempty"`
	Winner   string         `json:"gagnant,omitempty"`
}

func (r MoveResponse) Outcome() Outcome {
	if r.Match == MatchOver {
		return Outcome{Winner: r.Winner}
	}
	move := game.GameMove{Kind: r.Kind}
	if r.Position != nil {
		move.Position = *r.Position
	}
	return Outcome{Move: &move}
}

func NewMoveResponse(o Outcome) MoveResponse {
	if o.Over() {
		return MoveResponse{Match: MatchOver, Winner: o.Winner}
	}
	position := o.Move.Position
	return MoveResponse{Kind: o.Move.Kind, Position: &position}
}

type ErrorResponse struct {
	Message string `json:"message"`
}
