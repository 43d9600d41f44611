package game

import (
	"fmt"

	"github.com/pkg/errors"
)

type locatorKind int

const (
	locatorInvalid locatorKind = iota
	locatorIndex
	locatorCoordinates
)

// Locator addresses a cell either by flat index or by (row, column).
// The zero Locator addresses nothing.
type Locator struct {
	kind     locatorKind
	index    int
	row, col int
}

func ByIndex(idx int) Locator {
	return Locator{kind: locatorIndex, index: idx}
}

func ByCoordinates(row, col int) Locator {
	return Locator{kind: locatorCoordinates, row: row, col: col}
}

// ParseLocator builds a Locator from one part (an index) or two parts
// (row and column).
func ParseLocator(parts ...int) (Locator, error) {
	switch len(parts) {
	case 1:
		return ByIndex(parts[0]), nil
	case 2:
		return ByCoordinates(parts[0], parts[1]), nil
	default:
		return Locator{}, errors.Wrapf(ErrInvalidArgument, "expected 1 or 2 parts, got %d", len(parts))
	}
}

func (loc Locator) String() string {
	switch loc.kind {
	case locatorIndex:
		return fmt.Sprintf("[%d]", loc.index)
	case locatorCoordinates:
		return fmt.Sprintf("(%d, %d)", loc.row, loc.col)
	default:
		return "<invalid>"
	}
}

// resolve turns the locator into a flat index on board.
func (loc Locator) resolve(board *Board) (int, error) {
	switch loc.kind {
	case locatorIndex:
		if loc.index < 0 || loc.index >= board.NumCells() {
			return 0, errors.Wrapf(ErrOutOfBounds, "index %d not in [0, %d)", loc.index, board.NumCells())
		}
		return loc.index, nil
	case locatorCoordinates:
		return board.RowColToIndex(loc.row, loc.col)
	default:
		return 0, errors.WithStack(ErrInvalidArgument)
	}
}
