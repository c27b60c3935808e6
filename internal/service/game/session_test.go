package game

import (
	"sync"
	"testing"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newObservedSession(t *testing.T) (*GameSession, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGameSession("alice", "bob", zap.New(core)), logs
}

func TestNewGameSession(t *testing.T) {
	gs, logs := newObservedSession(t)

	snap := gs.Snapshot()
	assert.NotEmpty(t, snap.GameID)
	assert.Equal(t, gs.GameID(), snap.GameID)
	assert.Equal(t, domain.Player1, snap.CurrentPlayer)
	assert.Equal(t, domain.StatusActive, snap.Phase.Status)
	assert.Equal(t, 0, snap.MoveCount)
	assert.Equal(t, domain.Board{}, snap.Board)

	started := logs.FilterMessage("game started").All()
	require.Len(t, started, 1)
	assert.Equal(t, snap.GameID, started[0].ContextMap()["game_id"])
}

func TestNewGameSession_NilLogger(t *testing.T) {
	gs := NewGameSession("a", "b", nil)
	out := gs.HandleMove(1)
	assert.Equal(t, domain.OutcomeContinued, out.Kind)
}

func TestHandleMove_LogsRejection(t *testing.T) {
	gs, logs := newObservedSession(t)

	out := gs.HandleMove(9)
	assert.Equal(t, domain.OutcomeRejectedInvalidColumn, out.Kind)

	rejected := logs.FilterMessage("move rejected").All()
	require.Len(t, rejected, 1)
	fields := rejected[0].ContextMap()
	assert.Equal(t, int64(9), fields["column"])
	assert.Equal(t, "alice", fields["player"])
	assert.Equal(t, domain.ErrInvalidColumn.Error(), fields["error"])
}

func TestHandleMove_GameOver(t *testing.T) {
	gs, logs := newObservedSession(t)

	var out domain.Outcome
	for _, col := range []int{1, 2, 1, 2, 1, 2, 1} {
		out = gs.HandleMove(col)
	}
	require.Equal(t, domain.OutcomeWon, out.Kind)
	assert.Equal(t, "alice", gs.GetUsername(out.Player))

	over := logs.FilterMessage("game over").All()
	require.Len(t, over, 1)
	fields := over[0].ContextMap()
	assert.Equal(t, "connect_four", fields["reason"])
	assert.Equal(t, "alice", fields["winner"])
	assert.Equal(t, int64(7), fields["total_moves"])

	assert.Len(t, logs.FilterMessage("move made").All(), 7)

	out = gs.HandleMove(3)
	assert.Equal(t, domain.OutcomeRejectedGameOver, out.Kind)
	assert.Equal(t, 7, gs.Snapshot().MoveCount)
}

func TestRestart(t *testing.T) {
	gs, logs := newObservedSession(t)
	firstID := gs.GameID()

	for _, col := range []int{1, 2, 1, 2, 1, 2, 1} {
		gs.HandleMove(col)
	}
	require.Equal(t, domain.StatusWon, gs.Snapshot().Phase.Status)

	gs.Restart()

	snap := gs.Snapshot()
	assert.NotEqual(t, firstID, snap.GameID)
	assert.Equal(t, domain.StatusActive, snap.Phase.Status)
	assert.Equal(t, domain.Player1, snap.CurrentPlayer)
	assert.Equal(t, domain.Board{}, snap.Board)
	assert.Len(t, logs.FilterMessage("game started").All(), 2)
}

func TestHandleMove_Concurrent(t *testing.T) {
	gs := NewGameSession("alice", "bob", zap.NewNop())

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		placed int
	)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				out := gs.HandleMove((w+i)%domain.Columns + 1)
				if !out.Rejected() {
					mu.Lock()
					placed++
					mu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()

	snap := gs.Snapshot()
	assert.Equal(t, placed, snap.MoveCount)

	pieces := 0
	for _, row := range snap.Board {
		for _, cell := range row {
			if cell != domain.Empty {
				pieces++
			}
		}
	}
	assert.Equal(t, placed, pieces)
	assert.LessOrEqual(t, pieces, domain.Rows*domain.Columns)
}

func TestGetUsername(t *testing.T) {
	gs := NewGameSession("alice", "bob", zap.NewNop())

	assert.Equal(t, "alice", gs.GetUsername(domain.Player1))
	assert.Equal(t, "bob", gs.GetUsername(domain.Player2))
	assert.Equal(t, "", gs.GetUsername(domain.Empty))
	assert.Equal(t, "", gs.GetUsername(domain.PlayerID(7)))
}
