package game

import "fmt"

// Cell is a single field of the board. Values handed out by Board are copies;
// changes go through the Board operations only.
type Cell struct {
	idx       int
	isMine    bool
	state     CellState
	proximity int
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%d, %v)", cell.idx, cell.state)
}

func (cell Cell) Index() int {
	return cell.idx
}

func (cell Cell) IsMine() bool {
	return cell.isMine
}

func (cell Cell) State() CellState {
	return cell.state
}

func (cell Cell) IsRevealed() bool {
	return cell.state == Revealed
}

func (cell Cell) IsFlagged() bool {
	return cell.state == Flagged
}

func (cell Cell) IsHidden() bool {
	return cell.state == Hidden
}

// Proximity returns the number of neighbouring mines, or -1 when the cell is
// a mine or proximities have not been computed yet.
func (cell Cell) Proximity() int {
	return cell.proximity
}

// HasProximity reports whether Proximity holds a computed value.
func (cell Cell) HasProximity() bool {
	return !cell.isMine && cell.proximity != proximityUnset
}

func (cell *Cell) toggleMine() {
	cell.isMine = !cell.isMine
	cell.proximity = proximityUnset
}

// toggleFlagged flips Hidden and Flagged, returning the flag delta.
func (cell *Cell) toggleFlagged() int {
	switch cell.state {
	case Hidden:
		cell.state = Flagged
		return 1
	case Flagged:
		cell.state = Hidden
		return -1
	default:
		return 0
	}
}

// reveal marks a hidden cell revealed and reports whether it changed.
func (cell *Cell) reveal() bool {
	if cell.state != Hidden {
		return false
	}
	cell.state = Revealed
	return true
}
