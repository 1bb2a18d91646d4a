package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-tree/internal/config"
	"github.com/rocketscienceinc/tictactoe-tree/internal/console"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/layout"
	"github.com/rocketscienceinc/tictactoe-tree/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-tree/internal/render"
	"github.com/rocketscienceinc/tictactoe-tree/internal/repository"
	"github.com/rocketscienceinc/tictactoe-tree/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-tree/internal/service"
	"github.com/rocketscienceinc/tictactoe-tree/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-tree/transport/rest"
)

var ErrUnknownMode = errors.New("unknown mode")

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("Starting", "mode", conf.Mode)

	switch conf.Mode {
	case config.ModeTree:
		return runTree(ctx, logger, conf)
	case config.ModePlay:
		return runPlay(ctx, logger, conf)
	case config.ModeServe:
		return runServe(ctx, logger, conf)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runTree(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	board, err := entity.ParseBoard(conf.Tree.Board)
	if err != nil {
		return fmt.Errorf("failed to parse tree board: %w", err)
	}

	renderer, err := render.ForFormat(conf.Tree.Format, pngOptions(conf))
	if err != nil {
		return fmt.Errorf("failed to pick renderer: %w", err)
	}

	if err = newTreeDrawer(logger, conf, renderer).Save(ctx, board, conf.Tree.Output); err != nil {
		return fmt.Errorf("failed to draw tree: %w", err)
	}

	return nil
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	board, err := entity.ParseBoard(conf.Play.Board)
	if err != nil {
		return fmt.Errorf("failed to parse play board: %w", err)
	}

	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), service.NewBotService())
	out := termenv.NewOutput(os.Stdout)

	if err = console.New(logger, manager, board, conf.Play.Delay, os.Stdin, out).Run(ctx); err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}

	return nil
}

func runServe(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	gameRepo, closeRepo, err := newGameRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	manager := usecase.NewGameManager(logger, gameRepo, service.NewBotService())
	drawer := newTreeDrawer(logger, conf, render.NewSVG())
	server := rest.New(logger, drawer, manager, pngOptions(conf))

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}

// newGameRepository - redis when an address is configured, memory otherwise.
func newGameRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	log := logger.With("component", "app")

	addr := conf.Redis.GetRedisAddr()
	if addr == "" {
		log.Info("Keeping games in memory")
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage.Connection), closeStorage, nil
}

func newTreeDrawer(logger *slog.Logger, conf *config.Config, renderer render.Renderer) *usecase.TreeDrawer {
	var options []layout.Option
	if conf.Tree.Captions {
		options = append(options, layout.WithScores(minimax.Score))
	}

	engine := layout.New(layout.DefaultConfig(), options...)

	return usecase.NewTreeDrawer(logger, engine, renderer, conf.Tree.MaxEmptyCells)
}

func pngOptions(conf *config.Config) render.PNGOptions {
	return render.PNGOptions{
		Scale:       conf.Tree.PNGScale,
		Supersample: conf.Tree.PNGSupersample,
	}
}
