package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-tree/internal/render"
	"github.com/rocketscienceinc/tictactoe-tree/internal/repository"
)

type bestMoveResponse struct {
	Board entity.Board `json:"board"`
	Found bool         `json:"found"`
}

type evaluateResponse struct {
	Board entity.Board `json:"board"`
	Score float64      `json:"score"`
}

type createGameRequest struct {
	Board *entity.Board `json:"board"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// Tree - the rendered move tree of ?board= as ?format= (svg by default).
func (that *Server) Tree(w http.ResponseWriter, r *http.Request) {
	board, err := entity.ParseBoard(r.URL.Query().Get("board"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = render.FormatSVG
	}

	renderer, err := render.ForFormat(format, that.png)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	canvas, err := that.tree.Canvas(r.Context(), board)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	var image bytes.Buffer
	if err = renderer.Render(&image, canvas); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image.Bytes())
}

// BestMove - the board after X's best move; the input board when there is none.
func (that *Server) BestMove(w http.ResponseWriter, r *http.Request) {
	board, err := entity.ParseBoard(r.URL.Query().Get("board"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	response := bestMoveResponse{Board: board}
	if next, ok := minimax.BestMove(board); ok {
		response = bestMoveResponse{Board: next, Found: true}
	}

	writeJSON(w, http.StatusOK, response)
}

// Evaluate - the minimax score of a board on which X has just moved.
func (that *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	board, err := entity.ParseBoard(r.URL.Query().Get("board"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{Board: board, Score: minimax.Evaluate(board)})
}

func (that *Server) CreateGame(w http.ResponseWriter, r *http.Request) {
	var request createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, r, errors.Join(entity.ErrInvalidBoard, err))
		return
	}

	var board entity.Board
	if request.Board != nil {
		board = *request.Board
	}

	game, err := that.games.NewGame(r.Context(), board)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, game)
}

func (that *Server) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Server) MakeTurn(w http.ResponseWriter, r *http.Request) {
	var request turnRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Cell == nil {
		that.writeError(w, r, apperror.ErrInvalidCell)
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), *request.Cell)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *Server) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()), "error", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrTreeTooLarge),
		errors.Is(err, render.ErrCanvasTooLarge):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
