package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - plays one game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config, sessionID string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Play(ctx, logger, conf, sessionID, os.Stdin, os.Stdout)
}

// Play - wires storage, the game manager and the console, then runs the game until it ends.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, sessionID string, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	firstPlayer, err := entity.ParsePlayer(conf.FirstPlayer)
	if err != nil {
		return fmt.Errorf("invalid first-player setting: %w", err)
	}

	var sessionRepo repository.SessionRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		sessionRepo = repository.NewSessionRepository(redisStorage)
	}

	manager := usecase.NewGameManager(logger, sessionRepo, firstPlayer)
	game := console.New(logger, manager, in, out, console.Options{
		ClearScreen: !conf.NoClear,
		ShowSession: conf.Redis.Enabled,
	})

	log.Info("starting game", "firstPlayer", firstPlayer, "redis", conf.Redis.Enabled)

	if err = game.Run(ctx, sessionID); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}
