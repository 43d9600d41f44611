package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	config := NewConfig()
	assert.NoError(t, config.Validate())

	board, err := config.NewBoard()
	require.NoError(t, err)
	assert.Equal(t, 16, board.Rows())
	assert.Equal(t, 30, board.Columns())
	assert.Equal(t, 99, countMines(board))
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", "rows: 9\ncolumns: 9\nmines: 10\nseed: 42\nsafe_first_reveal: false\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Rows: 9, Columns: 9, NumMines: 10, Seed: 42}, config)

	a, err := config.NewBoard()
	require.NoError(t, err)
	b, err := config.NewBoard()
	require.NoError(t, err)
	assert.Equal(t, a.Layout(), b.Layout(), "same seed, same mines")
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "mines: 40\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, config.Rows)
	assert.Equal(t, 30, config.Columns)
	assert.Equal(t, 40, config.NumMines)
	assert.True(t, config.SafeFirstReveal)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "config.yaml", "rows: [1\n")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	config := NewConfig()
	config.NumMines = config.Rows * config.Columns
	assert.ErrorIs(t, config.Validate(), ErrConfiguration)

	_, err := config.NewBoard()
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestConfigWithLayout(t *testing.T) {
	config := NewConfig()
	config.LayoutPath = writeFile(t, "layout.yaml", "board: |\n  emm\n  eee\n")
	require.NoError(t, config.Validate())

	board, err := config.NewBoard()
	require.NoError(t, err)
	assert.Equal(t, 2, board.Rows())
	assert.Equal(t, 3, board.Columns())
	assert.Equal(t, "emm\neee", board.Layout().Board)
}
