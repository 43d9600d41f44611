package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// setState is the only place the board state changes. Once the game has
// ended, later transitions are ignored.
func (board *Board) setState(state BoardState) {
	if board.state == state {
		return
	}
	if board.state.Terminal() {
		board.log.WithFields(logrus.Fields{
			"state":     board.state,
			"requested": state,
		}).Debug("ignored transition out of finished game")
		return
	}

	board.log.WithFields(logrus.Fields{
		"from": board.state,
		"to":   state,
	}).Debug("state changed")
	board.state = state
}

// canPlay moves an initialized board to Started and reports whether moves
// are still accepted.
func (board *Board) canPlay() bool {
	if board.state.Terminal() {
		return false
	}
	board.setState(Started)
	return true
}

func (board *Board) lose() {
	board.setState(Loss)
	board.log.Debug("game lost")
}

func (board *Board) win() {
	board.setState(Win)
	board.log.Debug("game won")
}

// CheckWinState marks the game won when every mine is flagged and no flag
// sits on a safe cell, and returns the resulting state. It never ends the
// game in a loss.
func (board *Board) CheckWinState() BoardState {
	if board.state.Terminal() {
		return board.state
	}

	for idx := range board.cells {
		cell := &board.cells[idx]
		if cell.isMine != (cell.state == Flagged) {
			return board.state
		}
	}

	board.win()
	return board.state
}

// flagIfCleared flags every remaining mine once all safe cells are revealed.
func (board *Board) flagIfCleared() {
	for idx := range board.cells {
		cell := &board.cells[idx]
		if !cell.isMine && cell.state != Revealed {
			return
		}
	}

	for idx := range board.cells {
		cell := &board.cells[idx]
		if cell.isMine && cell.state == Hidden {
			board.numFlags += cell.toggleFlagged()
		}
	}
}

// Start performs the first reveal of a game. Flags placed beforehand do not
// count as a first move. With safe set, a mine under (row, col) is moved
// elsewhere before proximities are computed.
func (board *Board) Start(row, col int, safe bool) ([]int, error) {
	if board.hasRevealed || board.state.Terminal() {
		return nil, errors.Wrapf(ErrInvalidState, "cannot start %v game", board.state)
	}

	if safe {
		if err := board.RelocateMine(row, col); err != nil {
			return nil, err
		}
	}
	if err := board.ComputeProximities(); err != nil {
		return nil, err
	}
	return board.Reveal(row, col)
}
