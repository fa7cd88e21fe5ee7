package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const clearSequence = "\x1b[2J"

const (
	msgInvalidInput = `You entered an invalid input. Please write your input as "x y".`
	msgOutOfRange   = "Error: Coordinates can only be between 1 and 3."
	msgIllegalMove  = "Error: Not a legal move (%d, %d)"
	msgCurrentMove  = "Current move: %s"
	msgWon          = "%s has won"
	msgDraw         = "Game has ended in a draw."
	msgSession      = "Session: %s"
)

type gameManager interface {
	Start(ctx context.Context, sessionID string) (*entity.Session, error)
	MakeTurn(ctx context.Context, session *entity.Session, row, col int) (entity.Status, error)
}

type Options struct {
	// ClearScreen wipes the terminal before every board.
	ClearScreen bool
	// ShowSession prints the session id so the game can be resumed later.
	ShowSession bool
}

// Console plays one game over a line-oriented text stream.
type Console struct {
	logger  *slog.Logger
	manager gameManager

	in      io.Reader
	out     io.Writer
	options Options
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, options Options) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		manager: manager,
		in:      in,
		out:     out,
		options: options,
	}
}

// Run - plays until the game is won or drawn, the input ends or ctx is cancelled.
// Only a failure to start the game or an unexpected engine error is returned.
func (that *Console) Run(ctx context.Context, sessionID string) error {
	log := that.logger.With("method", "Run")

	session, err := that.manager.Start(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	that.clearScreen()
	if that.options.ShowSession {
		that.printf(msgSession+"\n", session.ID)
	}

	for {
		that.printBoard(session)
		that.printf(msgCurrentMove+"\n", session.Turn)

		var line string
		select {
		case <-ctx.Done():
			log.Info("game interrupted", "sessionID", session.ID)
			return nil
		case next, ok := <-lines:
			if !ok {
				log.Info("input closed", "sessionID", session.ID)
				return nil
			}
			line = next
		}

		row, col, err := ParseMove(line)
		if err != nil {
			log.Debug("rejected input", "line", line, "error", err)

			that.clearScreen()
			that.printInputError(err)
			continue
		}

		status, err := that.manager.MakeTurn(ctx, session, row, col)
		switch {
		case errors.Is(err, apperror.ErrCellOccupied):
			that.clearScreen()
			that.printf(msgIllegalMove+"\n", col+1, row+1)
			continue
		case err != nil:
			return fmt.Errorf("failed to make turn: %w", err)
		}

		switch status {
		case entity.StatusWon:
			that.clearScreen()
			that.printBoard(session)
			that.printf(msgWon+"\n", *session.Game.Winner)
			return nil
		case entity.StatusDrawn:
			that.clearScreen()
			that.printBoard(session)
			that.printf(msgDraw + "\n")
			return nil
		case entity.StatusInProgress:
			that.clearScreen()
		}
	}
}

// readLines - feeds input lines into a channel that is closed at EOF or on a read error.
func (that *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func (that *Console) printInputError(err error) {
	if errors.Is(err, ErrCoordinatesOutOfRange) {
		that.printf(msgOutOfRange + "\n")
		return
	}

	that.printf(msgInvalidInput + "\n")
}

func (that *Console) printBoard(session *entity.Session) {
	that.printf("%s\n", session.Game.Render())
}

func (that *Console) clearScreen() {
	if that.options.ClearScreen {
		that.printf(clearSequence)
	}
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Warn("failed to write output", "error", err)
	}
}
