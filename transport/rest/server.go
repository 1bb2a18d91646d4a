package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-tree/internal/drawing"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/render"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

type treeDrawer interface {
	Canvas(ctx context.Context, board entity.Board) (*drawing.Canvas, error)
}

type gameManager interface {
	NewGame(ctx context.Context, board entity.Board) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	router *chi.Mux

	tree  treeDrawer
	games gameManager
	png   render.PNGOptions
}

func New(logger *slog.Logger, tree treeDrawer, games gameManager, png render.PNGOptions) *Server {
	that := &Server{
		logger: logger.With("component", "rest"),
		router: chi.NewRouter(),
		tree:   tree,
		games:  games,
		png:    png,
	}

	that.router.Use(middleware.RequestID)
	that.router.Use(middleware.Recoverer)
	that.router.Use(middleware.Timeout(requestTimeout))

	that.router.Get("/ping", that.Ping)
	that.router.Get("/tree", that.Tree)
	that.router.Get("/best-move", that.BestMove)
	that.router.Get("/evaluate", that.Evaluate)

	that.router.Route("/games", func(r chi.Router) {
		r.Post("/", that.CreateGame)
		r.Get("/{id}", that.GetGame)
		r.Post("/{id}/turns", that.MakeTurn)
		r.Delete("/{id}", that.DeleteGame)
	})

	return that
}

func (that *Server) Router() http.Handler {
	return that.router
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: requestTimeout + 10*time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
