package domain

// Game is the board engine: the grid plus whose turn it is and whether the
// game is over. It is not safe for concurrent use.
type Game struct {
	board         Board
	currentPlayer PlayerID
	phase         Phase
	moveCount     int
}

func NewGame() *Game {
	return &Game{
		currentPlayer: Player1,
		phase:         Phase{Status: StatusActive, Winner: Empty},
	}
}

// DropPiece drops the current player's piece into a 1-based column.
// Rejected moves leave the game untouched and report why in the Outcome.
func (g *Game) DropPiece(column int) Outcome {
	if g.IsFinished() {
		return g.rejected(OutcomeRejectedGameOver)
	}

	if column < 1 || column > Columns {
		return g.rejected(OutcomeRejectedInvalidColumn)
	}

	col := column - 1
	if !g.board.IsValidMove(col) {
		return g.rejected(OutcomeRejectedColumnFull)
	}

	player := g.currentPlayer
	row, err := g.board.DropDisk(col, player)
	if err != nil {
		// unreachable after the checks above
		return g.rejected(OutcomeRejectedColumnFull)
	}

	g.moveCount++
	placed := Outcome{Player: player, Row: row, Column: col}

	if IsWinningMove(&g.board, row, col, player) {
		g.phase = Phase{Status: StatusWon, Winner: player}
		placed.Kind = OutcomeWon
		return placed
	}

	if g.board.IsBoardFull() {
		g.phase = Phase{Status: StatusDraw, Winner: Empty}
		placed.Kind = OutcomeDrawn
		return placed
	}

	g.currentPlayer = player.Opponent()
	placed.Kind = OutcomeContinued
	return placed
}

func (g *Game) rejected(kind OutcomeKind) Outcome {
	return Outcome{Kind: kind, Player: g.currentPlayer, Row: -1, Column: -1}
}

func (g *Game) CurrentPlayer() PlayerID {
	return g.currentPlayer
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) MoveCount() int {
	return g.moveCount
}

func (g *Game) IsFinished() bool {
	return g.phase.IsTerminal()
}

// CellAt takes 0-based coordinates. Anything off the board reads as Empty.
func (g *Game) CellAt(row, col int) PlayerID {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return Empty
	}
	return g.board[row][col]
}

// IsColumnFull takes a 1-based column. Columns off the board are reported
// full since nothing can ever be dropped there.
func (g *Game) IsColumnFull(column int) bool {
	return !g.board.IsValidMove(column - 1)
}

// Board returns a copy of the grid.
func (g *Game) Board() Board {
	return g.board
}

// ValidColumns lists the 1-based columns that still accept a piece.
func (g *Game) ValidColumns() []int {
	moves := g.board.ValidMoves()
	for i := range moves {
		moves[i]++
	}
	return moves
}
