package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cascadeBoard(t *testing.T) *Board {
	t.Helper()
	// mines at 0, 1, 2, 3, 4, 8, 12, 17, 18, 19
	board, err := FromLayout(
		"mmmm",
		"meee",
		"meee",
		"meee",
		"emmm",
	)
	require.NoError(t, err)
	require.NoError(t, board.ComputeProximities())
	return board
}

func requireState(t *testing.T, board *Board, want CellState, coords ...[2]int) {
	t.Helper()
	for _, rc := range coords {
		cell, err := board.CellAt(rc[0], rc[1])
		require.NoError(t, err)
		assert.Equal(t, want, cell.State(), "cell (%d, %d)", rc[0], rc[1])
	}
}

func TestRevealCascade(t *testing.T) {
	board := cascadeBoard(t)

	revealed, err := board.Reveal(2, 2)
	require.NoError(t, err)
	assert.Len(t, revealed, 9)
	assert.Equal(t, 10, revealed[0])

	requireState(t, board, Hidden,
		[2]int{2, 0}, [2]int{0, 2}, [2]int{4, 3}, [2]int{4, 0},
	)
	requireState(t, board, Revealed,
		[2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3},
		[2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3},
		[2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3},
	)
	assert.Equal(t, Started, board.State())
}

func TestRevealIsIdempotent(t *testing.T) {
	board := cascadeBoard(t)

	_, err := board.Reveal(2, 2)
	require.NoError(t, err)
	before := board.Cells()

	revealed, err := board.Reveal(2, 2)
	require.NoError(t, err)
	assert.Empty(t, revealed)

	revealed, err = board.Reveal(1, 1)
	require.NoError(t, err)
	assert.Empty(t, revealed)

	assert.Equal(t, before, board.Cells())
	assert.Equal(t, Started, board.State())
}

func TestRevealNumberDoesNotCascade(t *testing.T) {
	board := cascadeBoard(t)

	revealed, err := board.Reveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, revealed)

	cell, err := board.CellAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, cell.Proximity())
}

func TestRevealMineLoses(t *testing.T) {
	board := cascadeBoard(t)

	revealed, err := board.Reveal(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, revealed)
	assert.Equal(t, Loss, board.State())

	// nothing leaves a lost game
	revealed, err = board.Reveal(2, 2)
	require.NoError(t, err)
	assert.Empty(t, revealed)
	requireState(t, board, Hidden, [2]int{2, 2})

	require.NoError(t, board.ToggleFlag(0, 1))
	requireState(t, board, Hidden, [2]int{0, 1})

	for _, cell := range board.Cells() {
		if cell.IsMine() {
			board.cells[cell.Index()].state = Flagged
		}
	}
	assert.Equal(t, Loss, board.CheckWinState())

	board.setState(Win)
	assert.Equal(t, Loss, board.State())
}

func TestRevealSkipsFlaggedCells(t *testing.T) {
	board, err := FromLayout(
		"eee",
		"eee",
		"eem",
	)
	require.NoError(t, err)

	require.NoError(t, board.ToggleFlag(0, 0))

	revealed, err := board.Reveal(0, 0)
	require.NoError(t, err)
	assert.Empty(t, revealed)
	requireState(t, board, Flagged, [2]int{0, 0})

	revealed, err = board.Reveal(1, 0)
	require.NoError(t, err)
	assert.Len(t, revealed, 7)
	requireState(t, board, Flagged, [2]int{0, 0})
	requireState(t, board, Hidden, [2]int{2, 2})
	assert.Equal(t, Started, board.State())
}

func TestRevealComputesProximitiesWhenMissing(t *testing.T) {
	board, err := FromLayout("mee", "eee", "eee")
	require.NoError(t, err)

	_, err = board.Reveal(0, 1)
	require.NoError(t, err)

	cell, err := board.CellAt(0, 1)
	require.NoError(t, err)
	assert.True(t, cell.HasProximity())
	assert.Equal(t, 1, cell.Proximity())
}

func TestRevealOutOfBounds(t *testing.T) {
	board := cascadeBoard(t)

	_, err := board.Reveal(5, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = board.AutoReveal(0, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, board.ToggleFlag(-1, 0), ErrOutOfBounds)
	assert.Equal(t, Initialized, board.State())
}

func TestRevealDeepCascade(t *testing.T) {
	rows := make([]string, MaxDimension)
	for i := range rows {
		rows[i] = strings.Repeat("e", MaxDimension)
	}
	rows[MaxDimension-1] = strings.Repeat("e", MaxDimension-1) + "m"

	board, err := FromLayout(rows...)
	require.NoError(t, err)

	revealed, err := board.Reveal(0, 0)
	require.NoError(t, err)
	assert.Len(t, revealed, MaxDimension*MaxDimension-1)
	assert.Equal(t, Win, board.State())
}

func TestToggleFlag(t *testing.T) {
	board := cascadeBoard(t)

	require.NoError(t, board.ToggleFlag(0, 0))
	requireState(t, board, Flagged, [2]int{0, 0})
	assert.Equal(t, 9, board.MinesRemaining())
	assert.Equal(t, Started, board.State())

	require.NoError(t, board.ToggleFlag(0, 0))
	requireState(t, board, Hidden, [2]int{0, 0})
	assert.Equal(t, 10, board.MinesRemaining())

	_, err := board.Reveal(1, 1)
	require.NoError(t, err)
	require.NoError(t, board.ToggleFlag(1, 1))
	requireState(t, board, Revealed, [2]int{1, 1})
	assert.Equal(t, 10, board.MinesRemaining())
}

// chordBoard has a single revealed 1 at (1, 1) touching the mine at (0, 0).
func chordBoard(t *testing.T) *Board {
	t.Helper()
	board, err := FromLayout(
		"meeem",
		"eeeee",
		"eeeee",
	)
	require.NoError(t, err)
	require.NoError(t, board.ComputeProximities())

	revealed, err := board.Reveal(1, 1)
	require.NoError(t, err)
	require.Equal(t, []int{6}, revealed)
	return board
}

func TestAutoReveal(t *testing.T) {
	board := chordBoard(t)

	revealed, err := board.AutoReveal(1, 1)
	require.NoError(t, err)
	assert.Empty(t, revealed, "no flags placed yet")
	requireState(t, board, Hidden, [2]int{0, 1}, [2]int{1, 0}, [2]int{2, 2})

	require.NoError(t, board.ToggleFlag(0, 0))

	revealed, err = board.AutoReveal(1, 1)
	require.NoError(t, err)
	assert.Contains(t, revealed, 1)
	assert.Contains(t, revealed, 5)
	assert.Contains(t, revealed, 12)
	requireState(t, board, Revealed, [2]int{0, 1}, [2]int{1, 0}, [2]int{2, 2}, [2]int{1, 4})

	// every safe cell is open, so the remaining mine gets flagged
	requireState(t, board, Flagged, [2]int{0, 0}, [2]int{0, 4})
	assert.Equal(t, 0, board.MinesRemaining())
	assert.Equal(t, Win, board.State())
}

func TestAutoRevealWithWrongFlagLoses(t *testing.T) {
	board := chordBoard(t)

	require.NoError(t, board.ToggleFlag(1, 0))

	revealed, err := board.AutoReveal(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, revealed)
	assert.Equal(t, Loss, board.State())
	requireState(t, board, Revealed, [2]int{0, 0})
}

func TestAutoRevealIgnoresUnqualifiedCells(t *testing.T) {
	board := chordBoard(t)
	require.NoError(t, board.ToggleFlag(0, 0))
	before := board.Cells()

	// hidden cell
	revealed, err := board.AutoReveal(2, 2)
	require.NoError(t, err)
	assert.Empty(t, revealed)

	// flagged mine
	revealed, err = board.AutoReveal(0, 0)
	require.NoError(t, err)
	assert.Empty(t, revealed)

	// too many flags
	require.NoError(t, board.ToggleFlag(1, 0))
	revealed, err = board.AutoReveal(1, 1)
	require.NoError(t, err)
	assert.Empty(t, revealed)

	require.NoError(t, board.ToggleFlag(1, 0))
	assert.Equal(t, before, board.Cells())
	assert.Equal(t, Started, board.State())
}
