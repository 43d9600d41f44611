package game

import (
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// flood reveals start and, while the cells it reaches have no neighbouring
// mines, every hidden neighbour. Each cell is marked revealed before its
// neighbours are queued, so each is visited at most once. The indexes of
// newly revealed cells are returned in reveal order.
func (board *Board) flood(start int) []int {
	cell := &board.cells[start]
	if !cell.reveal() {
		return nil
	}
	board.hasRevealed = true
	revealed := []int{start}

	if cell.isMine {
		board.log.WithField("cell", start).Debug("revealed mine")
		board.lose()
		return revealed
	}

	var queue deque.Deque[int]
	queue.PushBack(start)

	for queue.Len() > 0 {
		idx := queue.PopFront()
		if board.cells[idx].proximity != 0 {
			continue
		}

		for _, n := range board.neighbors(idx) {
			if board.cells[n].reveal() {
				revealed = append(revealed, n)
				queue.PushBack(n)
			}
		}
	}

	if len(revealed) > 1 {
		board.log.WithFields(logrus.Fields{
			"cell":     start,
			"revealed": len(revealed),
		}).Debug("cascaded reveal")
	}
	return revealed
}

// Reveal uncovers the cell at (row, col). Revealed and flagged cells are
// left alone. A mine ends the game in a loss; a cell with no neighbouring
// mines cascades to its neighbours.
func (board *Board) Reveal(row, col int) ([]int, error) {
	idx, err := board.RowColToIndex(row, col)
	if err != nil {
		return nil, err
	}
	if !board.canPlay() {
		return nil, nil
	}

	board.ensureProximities()
	revealed := board.flood(idx)
	board.settle()
	return revealed, nil
}

// ToggleFlag flips the flag on a hidden cell; revealed cells are unaffected.
func (board *Board) ToggleFlag(row, col int) error {
	idx, err := board.RowColToIndex(row, col)
	if err != nil {
		return err
	}
	if !board.canPlay() {
		return nil
	}

	board.numFlags += board.cells[idx].toggleFlagged()
	board.settle()
	return nil
}

// AutoReveal chords on a revealed numbered cell: when exactly as many
// neighbours are flagged as the cell has neighbouring mines, every hidden
// neighbour is revealed. Otherwise nothing happens.
func (board *Board) AutoReveal(row, col int) ([]int, error) {
	idx, err := board.RowColToIndex(row, col)
	if err != nil {
		return nil, err
	}
	if board.state.Terminal() {
		return nil, nil
	}

	cell := board.cells[idx]
	if cell.state != Revealed || cell.isMine || cell.proximity <= 0 {
		return nil, nil
	}

	neighbors := board.neighbors(idx)
	numFlagged := 0
	for _, n := range neighbors {
		if board.cells[n].state == Flagged {
			numFlagged++
		}
	}
	if numFlagged != cell.proximity {
		return nil, nil
	}

	board.log.WithField("cell", idx).Debug("chord")

	var revealed []int
	for _, n := range neighbors {
		if board.state.Terminal() {
			break
		}
		if board.cells[n].state == Hidden {
			revealed = append(revealed, board.flood(n)...)
		}
	}
	board.settle()
	return revealed, nil
}

func (board *Board) settle() {
	if board.state.Terminal() {
		return
	}
	board.flagIfCleared()
	board.CheckWinState()
}
