package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/drawing"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/layout"
	"github.com/rocketscienceinc/tictactoe-tree/internal/render"
)

// TreeDrawer - lays out the move tree of a board and renders it as one image.
type TreeDrawer struct {
	logger        *slog.Logger
	engine        *layout.Engine
	renderer      render.Renderer
	maxEmptyCells int
}

func NewTreeDrawer(logger *slog.Logger, engine *layout.Engine, renderer render.Renderer, maxEmptyCells int) *TreeDrawer {
	return &TreeDrawer{
		logger:        logger.With("component", "tree_drawer"),
		engine:        engine,
		renderer:      renderer,
		maxEmptyCells: maxEmptyCells,
	}
}

// Canvas - the laid out tree: connector lines first, then the boards on top.
func (that *TreeDrawer) Canvas(ctx context.Context, board entity.Board) (*drawing.Canvas, error) {
	if empties := board.Empties(); that.maxEmptyCells > 0 && empties > that.maxEmptyCells {
		return nil, fmt.Errorf("%w: %d empty cells, at most %d allowed", apperror.ErrTreeTooLarge, empties, that.maxEmptyCells)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tree := that.engine.Tree(board)

	canvas := drawing.NewCanvas(tree.Width, tree.Height)
	canvas.Display.Add(tree.Lines)
	canvas.Display.Add(tree.Boards)

	that.logger.Debug("tree laid out", "method", "Canvas", "board", board.String(),
		"width", tree.Width, "height", tree.Height)

	return canvas, nil
}

// Draw - renders the tree of board into w.
func (that *TreeDrawer) Draw(ctx context.Context, board entity.Board, w io.Writer) error {
	canvas, err := that.Canvas(ctx, board)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = that.renderer.Render(w, canvas); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}

	return nil
}

// Save - renders the tree of board into a file at path.
func (that *TreeDrawer) Save(ctx context.Context, board entity.Board, path string) error {
	log := that.logger.With("method", "Save")

	canvas, err := that.Canvas(ctx, board)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = render.Save(canvas, path, that.renderer); err != nil {
		return fmt.Errorf("failed to save tree: %w", err)
	}

	log.Info("tree saved", "path", path, "board", board.String())

	return nil
}
