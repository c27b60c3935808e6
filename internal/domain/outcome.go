package domain

type OutcomeKind int

const (
	OutcomeContinued OutcomeKind = iota
	OutcomeWon
	OutcomeDrawn
	OutcomeRejectedGameOver
	OutcomeRejectedInvalidColumn
	OutcomeRejectedColumnFull
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeContinued:             "continued",
	OutcomeWon:                   "won",
	OutcomeDrawn:                 "drawn",
	OutcomeRejectedGameOver:      "rejected_game_over",
	OutcomeRejectedInvalidColumn: "rejected_invalid_column",
	OutcomeRejectedColumnFull:    "rejected_column_full",
}

func (k OutcomeKind) String() string {
	if name, ok := outcomeNames[k]; ok {
		return name
	}
	return "unknown"
}

// Outcome is the result of a single DropPiece call.
//
// For placed pieces Player is the mover and Row/Column are the 0-based cell
// the piece landed in. For rejections Player is whoever is still to move and
// Row/Column are -1.
type Outcome struct {
	Kind   OutcomeKind
	Player PlayerID
	Row    int
	Column int
}

func (o Outcome) Rejected() bool {
	return o.Err() != nil
}

// IsTerminal reports whether this move ended the game.
func (o Outcome) IsTerminal() bool {
	return o.Kind == OutcomeWon || o.Kind == OutcomeDrawn
}

// Err maps a rejection onto its sentinel error, nil for placed pieces.
func (o Outcome) Err() error {
	switch o.Kind {
	case OutcomeRejectedGameOver:
		return ErrGameOver
	case OutcomeRejectedInvalidColumn:
		return ErrInvalidColumn
	case OutcomeRejectedColumnFull:
		return ErrColumnFull
	}
	return nil
}

func (o Outcome) String() string {
	return o.Kind.String()
}
