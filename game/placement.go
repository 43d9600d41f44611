package game

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// sampleIndexes draws k distinct values uniformly from [0, n) with a partial
// Fisher-Yates shuffle.
func sampleIndexes(rnd *rand.Rand, n, k int) []int {
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rnd.IntN(n-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}
	return indexes[:k]
}

func (board *Board) placeMines() {
	for _, idx := range sampleIndexes(board.rand, board.NumCells(), board.numMines) {
		board.cells[idx].isMine = true
	}
	board.log.Debug("placed mines")
}

// RelocateMine moves the mine at (row, col), if any, to a uniformly chosen
// cell without a mine. It is only allowed before the first reveal.
func (board *Board) RelocateMine(row, col int) error {
	idx, err := board.RowColToIndex(row, col)
	if err != nil {
		return err
	}
	if board.hasRevealed || board.state.Terminal() {
		return errors.Wrapf(ErrInvalidState, "cannot relocate mine in %v game after a reveal", board.state)
	}

	cell := &board.cells[idx]
	if !cell.isMine {
		return nil
	}

	candidates := make([]int, 0, board.NumCells()-board.numMines)
	for i := range board.cells {
		if !board.cells[i].isMine {
			candidates = append(candidates, i)
		}
	}
	// mines < cells keeps candidates non-empty
	target := candidates[board.rand.IntN(len(candidates))]

	cell.toggleMine()
	board.cells[target].toggleMine()
	board.invalidateProximities()

	board.log.WithFields(logrus.Fields{
		"from": idx,
		"to":   target,
	}).Debug("relocated mine")
	return nil
}
