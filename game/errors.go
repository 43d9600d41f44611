package game

import "github.com/pkg/errors"

var (
	// ErrConfiguration is returned when a board cannot be built from the
	// requested dimensions, mine count or layout.
	ErrConfiguration = errors.New("invalid board configuration")
	// ErrOutOfBounds is returned for an index or coordinate outside the board.
	ErrOutOfBounds = errors.New("cell locator out of bounds")
	// ErrInvalidArgument is returned for a locator of the wrong shape.
	ErrInvalidArgument = errors.New("invalid cell locator")
	// ErrInvalidState is returned for layout changes once play has begun.
	ErrInvalidState = errors.New("operation not allowed in current game state")
)
