package domain

// PlayerID is the content of a single board cell. It is either Empty or
// the piece of one of the two players.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	}
	return " "
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Phase is the termination state of a game. Winner is only set when
// Status is StatusWon.
type Phase struct {
	Status GameStatus
	Winner PlayerID
}

func (p Phase) IsTerminal() bool {
	return p.Status == StatusWon || p.Status == StatusDraw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrGameOver      Error = "game is already over"
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
)
