package game

import (
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
	"go.uber.org/zap"
)

// Snapshot is a copy of the session state taken under the lock.
type Snapshot struct {
	GameID        string
	Board         domain.Board
	CurrentPlayer domain.PlayerID
	Phase         domain.Phase
	MoveCount     int
}

// GameSession owns the engine for one table. Every call into the engine
// goes through the session lock, so a session may be shared between
// goroutines even though domain.Game may not.
type GameSession struct {
	Player1Username string
	Player2Username string

	gameID     string
	game       *domain.Game
	createdAt  time.Time
	finishedAt time.Time
	mu         sync.Mutex
	logger     *zap.Logger
}

func NewGameSession(player1Username, player2Username string, logger *zap.Logger) *GameSession {
	if logger == nil {
		logger = zap.NewNop()
	}

	gs := &GameSession{
		Player1Username: player1Username,
		Player2Username: player2Username,
		logger:          logger.Named("session"),
	}
	gs.startLocked()
	return gs
}

// startLocked swaps in a brand new engine; caller must hold mu or own gs exclusively
func (gs *GameSession) startLocked() {
	gs.gameID = uid.GenerateGameID()
	gs.game = domain.NewGame()
	gs.createdAt = time.Now()
	gs.finishedAt = time.Time{}

	gs.logger.Info("game started",
		zap.String("game_id", gs.gameID),
		zap.String("player1", gs.Player1Username),
		zap.String("player2", gs.Player2Username),
	)
}

// HandleMove drops the current player's piece into a 1-based column.
func (gs *GameSession) HandleMove(column int) domain.Outcome {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	out := gs.game.DropPiece(column)

	if err := out.Err(); err != nil {
		gs.logger.Info("move rejected",
			zap.String("game_id", gs.gameID),
			zap.Int("column", column),
			zap.String("player", gs.GetUsername(out.Player)),
			zap.Error(err),
		)
		return out
	}

	gs.logger.Debug("move made",
		zap.String("game_id", gs.gameID),
		zap.String("player", gs.GetUsername(out.Player)),
		zap.Int("row", out.Row),
		zap.Int("column", out.Column),
		zap.Int("move", gs.game.MoveCount()),
	)

	if out.IsTerminal() {
		gs.finishedAt = time.Now()

		reason, winner := "draw", "draw"
		if out.Kind == domain.OutcomeWon {
			reason, winner = "connect_four", gs.GetUsername(out.Player)
		}

		gs.logger.Info("game over",
			zap.String("game_id", gs.gameID),
			zap.String("reason", reason),
			zap.String("winner", winner),
			zap.Int("total_moves", gs.game.MoveCount()),
			zap.Duration("duration", gs.finishedAt.Sub(gs.createdAt)),
		)
	}

	return out
}

// Restart throws the current game away and starts a fresh one under a new
// game ID.
func (gs *GameSession) Restart() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.logger.Debug("discarding game",
		zap.String("game_id", gs.gameID),
		zap.Bool("finished", gs.game.IsFinished()),
	)
	gs.startLocked()
}

func (gs *GameSession) GameID() string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.gameID
}

func (gs *GameSession) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return Snapshot{
		GameID:        gs.gameID,
		Board:         gs.game.Board(),
		CurrentPlayer: gs.game.CurrentPlayer(),
		Phase:         gs.game.Phase(),
		MoveCount:     gs.game.MoveCount(),
	}
}

// GetUsername returns "" for anything that is not a player.
func (gs *GameSession) GetUsername(playerID domain.PlayerID) string {
	switch playerID {
	case domain.Player1:
		return gs.Player1Username
	case domain.Player2:
		return gs.Player2Username
	}
	return ""
}
