package game

type CellState int
type BoardState int

const (
	Hidden CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

const (
	Loss BoardState = iota - 1
	Initialized
	Started
	Win
)

func (s BoardState) String() string {
	switch s {
	case Loss:
		return "loss"
	case Initialized:
		return "initialized"
	case Started:
		return "started"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further move may change the board.
func (s BoardState) Terminal() bool {
	return s == Win || s == Loss
}

const (
	// MaxDimension bounds both the number of rows and of columns.
	MaxDimension = 30

	proximityUnset = -1
)
