package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager drives one game: it owns whose turn it is, applies moves through
// the engine and decides when the game is won or drawn.
// sessionRepo is optional, without it sessions only live in memory.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	firstPlayer entity.Player
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, firstPlayer entity.Player) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		firstPlayer: firstPlayer,
	}
}

// Start - resumes the stored session with the given id if it is still in progress,
// otherwise starts a new one. An empty id always starts a new session.
func (that *GameManager) Start(ctx context.Context, sessionID string) (*entity.Session, error) {
	log := that.logger.With("method", "Start", "sessionID", sessionID)

	if sessionID != "" && that.sessionRepo != nil {
		session, err := that.sessionRepo.GetByID(ctx, sessionID)
		switch {
		case err == nil && !session.IsFinished():
			log.Info("session resumed", "moves", session.Moves)
			return session, nil
		case err == nil:
			log.Info("stored session is already finished, starting over")
		case errors.Is(err, repository.ErrSessionNotFound):
			log.Info("session not found, starting a new one")
		default:
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session := entity.NewSession(sessionID, that.firstPlayer)
	if that.sessionRepo != nil {
		if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
	}

	log.Info("session started", "id", session.ID, "firstPlayer", session.Turn)

	return session, nil
}

// MakeTurn - plays (row, col) for the player to move and moves the session to its next state.
// A win is checked before a draw. The turn only passes to the opponent when the game goes on.
func (that *GameManager) MakeTurn(ctx context.Context, session *entity.Session, row, col int) (entity.Status, error) {
	if session.IsFinished() {
		return session.Game.Status(), apperror.ErrGameFinished
	}

	player := session.Turn
	if err := session.Game.ApplyMove(row, col, player); err != nil {
		return entity.StatusInProgress, fmt.Errorf("failed to make turn: %w", err)
	}
	session.Moves++

	var status entity.Status
	switch {
	case session.Game.CheckForWin(row, col):
		session.Game.SetWinner(player)
		status = entity.StatusWon
	case session.Game.CheckForDraw():
		status = entity.StatusDrawn
	default:
		session.Turn = player.Next()
		status = entity.StatusInProgress
	}

	that.logger.Debug("turn made",
		"sessionID", session.ID, "player", player, "row", row, "col", col, "status", status)

	if status == entity.StatusInProgress {
		that.saveSession(ctx, session)
	} else {
		that.deleteSession(ctx, session)
	}

	return status, nil
}

// saveSession - a failed save only costs the ability to resume, so it is logged and play goes on.
func (that *GameManager) saveSession(ctx context.Context, session *entity.Session) {
	if that.sessionRepo == nil {
		return
	}

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		that.logger.Error("failed to save session", "sessionID", session.ID, "error", err)
	}
}

func (that *GameManager) deleteSession(ctx context.Context, session *entity.Session) {
	if that.sessionRepo == nil {
		return
	}

	log := that.logger.With("method", "deleteSession", "sessionID", session.ID)

	err := that.sessionRepo.DeleteByID(ctx, session.ID)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		log.Error("failed to delete session", "error", err)
		return
	}

	log.Info("session deleted")
}
