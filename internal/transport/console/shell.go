// Package console drives a game session from a line-oriented terminal:
// it prints the board, reads a column, plays it and offers a restart once
// the game is over.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"go.uber.org/zap"
)

const restartAnswer = "1"

type Shell struct {
	session  *game.GameSession
	renderer *Renderer
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger

	// set by the reader goroutine before it closes the lines channel
	readErr error
}

func NewShell(session *game.GameSession, renderer *Renderer, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		session:  session,
		renderer: renderer,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   logger.Named("console"),
	}
}

// Run plays until the input ends, the player declines a restart or ctx is
// done. Running out of input is a normal way to quit and returns nil.
// Cancelling ctx also ends a prompt that is still waiting for input.
func (s *Shell) Run(ctx context.Context) error {
	lines := s.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		snap := s.session.Snapshot()
		s.printf("%s", s.renderer.Board(snap.Board))
		s.printf("%s, enter the column number (1-%d) to drop your symbol:\n",
			s.playerLabel(snap.CurrentPlayer), domain.Columns)

		line, err := s.readLine(ctx, lines)
		if err != nil || line == nil {
			return err
		}

		column, err := strconv.Atoi(*line)
		if err != nil {
			s.logger.Debug("non-numeric input", zap.String("input", *line))
			s.printf("Invalid input. Please enter a valid column number.\n")
			continue
		}

		out := s.session.HandleMove(column)
		s.report(out)

		if !out.IsTerminal() {
			continue
		}

		s.printf("%s", s.renderer.Board(s.session.Snapshot().Board))
		s.printf("Restart? Yes (1) No (0):\n")

		answer, err := s.readLine(ctx, lines)
		if err != nil || answer == nil {
			return err
		}
		if *answer != restartAnswer {
			return nil
		}
		s.session.Restart()
	}
}

func (s *Shell) report(out domain.Outcome) {
	switch out.Kind {
	case domain.OutcomeWon:
		s.printf("Connect Four! %s wins!\n", s.playerLabel(out.Player))
	case domain.OutcomeDrawn:
		s.printf("It's a draw. The board is full.\n")
	case domain.OutcomeRejectedGameOver:
		s.printf("The game is already over. Please restart.\n")
	case domain.OutcomeRejectedInvalidColumn:
		s.printf("Invalid column number. Please choose a column between 1 and %d.\n", domain.Columns)
	case domain.OutcomeRejectedColumnFull:
		s.printf("Selected column is already full. Please choose another column.\n")
	}
}

func (s *Shell) playerLabel(p domain.PlayerID) string {
	return fmt.Sprintf("%s (%s)", s.session.GetUsername(p), s.renderer.Symbol(p))
}

// readLines scans input on its own goroutine so a blocked read never
// holds up cancellation. The channel is closed at EOF or on a read error.
func (s *Shell) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for s.in.Scan() {
			select {
			case lines <- strings.TrimSpace(s.in.Text()):
			case <-ctx.Done():
				return
			}
		}
		if err := s.in.Err(); err != nil {
			s.readErr = fmt.Errorf("failed to read input: %w", err)
		}
	}()
	return lines
}

// readLine returns a nil line and nil error on a clean EOF.
func (s *Shell) readLine(ctx context.Context, lines <-chan string) (*string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case line, ok := <-lines:
		if !ok {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, s.readErr
		}
		return &line, nil
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
