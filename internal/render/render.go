// Package render writes a drawing.Canvas as an image file.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/drawing"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

type Renderer interface {
	Render(w io.Writer, canvas *drawing.Canvas) error
	ContentType() string
}

// ForFormat - the renderer for an image format name.
func ForFormat(format string, options PNGOptions) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatSVG:
		return NewSVG(), nil
	case FormatPNG:
		return NewPNG(options), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownFormat, format)
	}
}

// Save - renders canvas into a new file at path.
func Save(canvas *drawing.Canvas, path string, renderer Renderer) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, closeErr))
		}
	}()

	if err = renderer.Render(file, canvas); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	return nil
}
