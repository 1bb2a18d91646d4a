// Package layout draws the complete move tree of a board.
//
// A laid out subtree is either a single board tile (terminal boards) or a group
// whose first element is the board tile and whose remaining elements are the
// child subtrees, left to right. Children sit above their parent.
package layout

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tree/internal/drawing"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tree/internal/tictactoe"
)

// ScoreFunc - scores board, produced by last, for captions.
type ScoreFunc func(board entity.Board, last entity.Mark) float64

type Option func(*Engine)

// WithScores - captions every tile with score.
func WithScores(score ScoreFunc) Option {
	return func(e *Engine) {
		if score != nil {
			e.score = score
		}
	}
}

type Engine struct {
	config Config
	score  ScoreFunc
}

func New(config Config, options ...Option) *Engine {
	e := &Engine{config: config}
	for _, option := range options {
		option(e)
	}

	return e
}

// Tree - a fully laid out move tree, centered on a canvas of Width x Height.
type Tree struct {
	Boards *drawing.Drawing
	Lines  *drawing.Drawing
	Width  float64
	Height float64
}

// Tree lays out every continuation of board, starting with O's replies, sizes a
// canvas around it and connects the tiles.
func (that *Engine) Tree(board entity.Board) Tree {
	boards := that.Subtree(board, entity.PlayerX)

	// a subtree always contains at least its own tile
	bounds, _ := boards.Bounds()

	m := that.config.Margin
	width := (bounds.Right + m.Right) - (bounds.Left - m.Left)
	height := (bounds.Bottom + m.Bottom) - (bounds.Top - m.Top)

	drawing.Center(boards, width, height, (m.Top-m.Bottom)/2)

	return Tree{
		Boards: boards,
		Lines:  that.ConnectorLines(boards, 0),
		Width:  width,
		Height: height,
	}
}

// Subtree lays out board, produced by last, and every board reachable from it.
func (that *Engine) Subtree(board entity.Board, last entity.Mark) *drawing.Drawing {
	tile := that.DrawBoard(board, last)
	if tictactoe.IsTerminal(board) {
		return tile
	}

	next := tictactoe.SwitchMark(last)
	boards := tictactoe.NextBoards(board, next)

	depth := len(boards)
	if depth > 0 {
		depth--
	}

	row := drawing.Group()
	for _, child := range boards {
		sub := that.Subtree(child, next)
		drawing.Beside(row, sub, that.config.HorizontalGap)
		row.Display.Add(sub)
	}

	drawing.Above(row, tile, that.config.VerticalGap, depth)

	tree := drawing.Group(tile)
	tree.Display = append(tree.Display, row.Display...)

	return tree
}

// DrawBoard - a single board tile with its top-left corner at the origin.
func (that *Engine) DrawBoard(board entity.Board, last entity.Mark) *drawing.Drawing {
	side := that.config.SideLength
	lineWidth := float64(that.config.LineWidth)

	tile := drawing.New().
		WithShape(drawing.Rectangle{Width: float64(side), Height: float64(side)}).
		WithStyle(drawing.Filled(that.config.Background))

	cellSide := float64(side/entity.GridSize - that.config.LineWidth)
	step := float64(side) / entity.GridSize

	for i, mark := range board {
		pos := entity.IndexToPosition(i, entity.GridSize)

		cell := drawing.New().
			WithShape(drawing.Rectangle{Width: cellSide, Height: cellSide}).
			WithStyle(drawing.Filled(that.markColor(mark))).
			WithXY(step*pos.X+lineWidth/2, step*pos.Y+lineWidth/2)

		tile.Display.Add(cell)
	}

	if that.score != nil {
		tile.Display.Add(that.caption(that.score(board, last)))
	}

	return tile
}

func (that *Engine) caption(score float64) *drawing.Drawing {
	text := drawing.Text{Content: fmt.Sprintf("%+g", score), Size: that.config.CaptionSize}
	width := text.Bounds(0, 0).Width()
	side := float64(that.config.SideLength)

	return drawing.New().
		WithShape(text).
		WithStyle(drawing.Filled(that.config.CaptionColor)).
		WithXY(side/2-width/2, side+text.Size/4)
}

func (that *Engine) markColor(mark entity.Mark) drawing.RGB {
	switch mark {
	case entity.PlayerX:
		return that.config.XColor
	case entity.PlayerO:
		return that.config.OColor
	default:
		return that.config.EmptyColor
	}
}

// ConnectorLines - one line from every parent tile to each of its child tiles,
// moved down by baselineY. Call it after the tree has been centered.
func (that *Engine) ConnectorLines(tree *drawing.Drawing, baselineY float64) *drawing.Drawing {
	lines := drawing.Group()
	that.connect(tree, lines, baselineY)

	return lines
}

func (that *Engine) connect(tree, lines *drawing.Drawing, baselineY float64) {
	if tree.Shape != nil || len(tree.Display) == 0 {
		return
	}

	parent := tree.Display[0]
	if parent.Shape == nil {
		return
	}

	from := parent.Shape.Bounds(parent.X, parent.Y)
	x1, y1 := from.CenterX(), from.Top+baselineY

	for _, branch := range tree.Display[1:] {
		// the child end attaches below any caption
		to, ok := tileOf(branch).Bounds()
		if !ok {
			continue
		}

		x2, y2 := to.CenterX(), to.Bottom+baselineY

		line := drawing.New().
			WithShape(drawing.Line{DX: x2 - x1, DY: y2 - y1}).
			WithStyle(drawing.Stroked(that.config.LineColor, that.config.ConnectorWidth)).
			WithXY(x1, y1)
		lines.Display.Add(line)

		that.connect(branch, lines, baselineY)
	}
}

func tileOf(subtree *drawing.Drawing) *drawing.Drawing {
	if subtree.Shape != nil || len(subtree.Display) == 0 {
		return subtree
	}

	return subtree.Display[0]
}
