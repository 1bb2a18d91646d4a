package application

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-tree/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tree/internal/config"
	"github.com/rocketscienceinc/tictactoe-tree/internal/entity"
)

func treeConfig(t *testing.T, format string) *config.Config {
	t.Helper()

	return &config.Config{
		Mode: config.ModeTree,
		Tree: config.Tree{
			Board:          "XOXOOXEXE",
			Output:         filepath.Join(t.TempDir(), "tree."+format),
			Format:         format,
			MaxEmptyCells:  6,
			Captions:       true,
			PNGScale:       0.1,
			PNGSupersample: 1,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunApp_Tree(t *testing.T) {
	// Given
	conf := treeConfig(t, "svg")

	// When
	err := RunApp(discardLogger(), conf)

	// Then: the tree is written with a caption under every tile
	require.NoError(t, err)

	content, err := os.ReadFile(conf.Tree.Output)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(content), "<text "))
	assert.Equal(t, 4, strings.Count(string(content), "<line "))
}

func TestRunApp_TreePNG(t *testing.T) {
	conf := treeConfig(t, "png")

	require.NoError(t, RunApp(discardLogger(), conf))

	info, err := os.Stat(conf.Tree.Output)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunApp_Errors(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		err := RunApp(discardLogger(), &config.Config{Mode: "fly"})

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("bad board", func(t *testing.T) {
		conf := treeConfig(t, "svg")
		conf.Tree.Board = "XOX"

		err := RunApp(discardLogger(), conf)

		require.ErrorIs(t, err, entity.ErrInvalidBoard)
	})

	t.Run("unknown format", func(t *testing.T) {
		err := RunApp(discardLogger(), treeConfig(t, "gif"))

		require.ErrorIs(t, err, apperror.ErrUnknownFormat)
	})

	t.Run("tree too large", func(t *testing.T) {
		conf := treeConfig(t, "svg")
		conf.Tree.Board = "EEEEEEEEE"

		err := RunApp(discardLogger(), conf)

		require.ErrorIs(t, err, apperror.ErrTreeTooLarge)
	})
}
