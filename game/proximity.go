package game

import "github.com/pkg/errors"

// ComputeProximities counts, for every cell without a mine, the mines in its
// Moore neighbourhood. Mine cells keep an unset proximity.
func (board *Board) ComputeProximities() error {
	if board.hasRevealed || board.state.Terminal() {
		return errors.Wrapf(ErrInvalidState, "cannot compute proximities in %v game after a reveal", board.state)
	}
	board.computeProximities()
	return nil
}

func (board *Board) computeProximities() {
	for idx := range board.cells {
		cell := &board.cells[idx]
		if cell.isMine {
			cell.proximity = proximityUnset
			continue
		}

		count := 0
		for _, n := range board.neighbors(idx) {
			if board.cells[n].isMine {
				count++
			}
		}
		cell.proximity = count
	}
	board.proximitiesComputed = true
	board.log.Debug("computed proximities")
}

func (board *Board) invalidateProximities() {
	if !board.proximitiesComputed {
		return
	}
	for idx := range board.cells {
		board.cells[idx].proximity = proximityUnset
	}
	board.proximitiesComputed = false
}

func (board *Board) ensureProximities() {
	if !board.proximitiesComputed {
		board.computeProximities()
	}
}
