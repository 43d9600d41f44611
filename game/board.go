package game

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Board struct {
	id            uuid.UUID
	rows, columns int // in number of cells
	numMines      int
	numFlags      int
	cells         []Cell

	state               BoardState
	proximitiesComputed bool
	hasRevealed         bool

	rand *rand.Rand
	log  *logrus.Entry
}

func (board *Board) ID() uuid.UUID {
	return board.id
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Columns() int {
	return board.columns
}

func (board *Board) NumCells() int {
	return board.rows * board.columns
}

func (board *Board) NumMines() int {
	return board.numMines
}

// MinesRemaining is the number of mines minus the number of placed flags.
func (board *Board) MinesRemaining() int {
	return board.numMines - board.numFlags
}

func (board *Board) sizeString() string {
	return fmt.Sprintf("%dx%d/%d", board.rows, board.columns, board.numMines)
}

func (board *Board) State() BoardState {
	return board.state
}

// HasRevealed reports whether any cell has been revealed yet. Flags alone
// leave the mine layout open to change.
func (board *Board) HasRevealed() bool {
	return board.hasRevealed
}

// Get returns a copy of the cell addressed by loc.
func (board *Board) Get(loc Locator) (Cell, error) {
	idx, err := loc.resolve(board)
	if err != nil {
		return Cell{}, err
	}
	return board.cells[idx], nil
}

func (board *Board) CellAt(row, col int) (Cell, error) {
	return board.Get(ByCoordinates(row, col))
}

// Cells returns a row-major copy of every cell, for display.
func (board *Board) Cells() []Cell {
	out := make([]Cell, len(board.cells))
	copy(out, board.cells)
	return out
}

func (board *Board) RowColToIndex(row, col int) (int, error) {
	if row < 0 || row >= board.rows || col < 0 || col >= board.columns {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d, %d) outside %dx%d board", row, col, board.rows, board.columns)
	}
	return row*board.columns + col, nil
}

func (board *Board) IndexToRowCol(idx int) (row, col int, err error) {
	if idx < 0 || idx >= board.NumCells() {
		return 0, 0, errors.Wrapf(ErrOutOfBounds, "index %d not in [0, %d)", idx, board.NumCells())
	}
	return idx / board.columns, idx % board.columns, nil
}

// Neighbors returns the indexes of the Moore neighbourhood of loc.
func (board *Board) Neighbors(loc Locator) ([]int, error) {
	idx, err := loc.resolve(board)
	if err != nil {
		return nil, err
	}
	return board.neighbors(idx), nil
}

func (board *Board) neighbors(idx int) []int {
	row, col := idx/board.columns, idx%board.columns

	out := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < board.rows && c >= 0 && c < board.columns {
				out = append(out, r*board.columns+c)
			}
		}
	}
	return out
}

func validateDimensions(rows, columns, numMines int) error {
	if rows <= 0 || columns <= 0 || rows > MaxDimension || columns > MaxDimension {
		return errors.Wrapf(ErrConfiguration, "board must be between 1x1 and %dx%d, got %dx%d",
			MaxDimension, MaxDimension, rows, columns)
	}
	if total := rows * columns; numMines < 1 || numMines >= total {
		return errors.Wrapf(ErrConfiguration, "mine count must be in [1, %d), got %d", total, numMines)
	}
	return nil
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// allocateBoard builds a board with no mines and every proximity unset.
func allocateBoard(rows, columns, numMines int, rnd *rand.Rand) *Board {
	if rnd == nil {
		rnd = newRand()
	}

	board := &Board{
		id:       uuid.New(),
		rows:     rows,
		columns:  columns,
		numMines: numMines,
		cells:    make([]Cell, rows*columns),
		state:    Initialized,
		rand:     rnd,
	}
	board.log = Log.WithFields(logrus.Fields{
		"board": board.id.String(),
		"size":  board.sizeString(),
	})

	for idx := range board.cells {
		board.cells[idx] = Cell{
			idx:       idx,
			state:     Hidden,
			proximity: proximityUnset,
		}
	}
	return board
}

// NewBoard creates a rows x columns board with numMines mines placed
// uniformly at random. A nil rnd seeds a fresh source.
func NewBoard(rows, columns, numMines int, rnd *rand.Rand) (*Board, error) {
	if err := validateDimensions(rows, columns, numMines); err != nil {
		return nil, err
	}

	board := allocateBoard(rows, columns, numMines, rnd)
	board.placeMines()
	return board, nil
}
