package random

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/they4kman/sweepcore/game"
)

// Director reveals a random hidden cell on every move.
type Director struct {
	// Seed for picking cells; 0 picks a random one
	Seed uint64
	// Whether the opening move may not hit a mine
	SafeFirstReveal bool

	board *game.Board
	rand  *rand.Rand
}

func (director *Director) Init(board *game.Board) {
	director.board = board

	seed := director.Seed
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	director.rand = rand.New(rand.NewPCG(seed, seed))
}

func (director *Director) Rand() *rand.Rand {
	return director.rand
}

func (director *Director) Act() (bool, error) {
	var hiddenCells []int
	for _, cell := range director.board.Cells() {
		if cell.IsHidden() {
			hiddenCells = append(hiddenCells, cell.Index())
		}
	}
	if len(hiddenCells) == 0 {
		return false, nil
	}

	idx := hiddenCells[director.rand.IntN(len(hiddenCells))]
	return true, Reveal(director.board, idx, director.SafeFirstReveal)
}

// Reveal opens the cell at idx, starting the game first when nothing has
// been played yet.
func Reveal(board *game.Board, idx int, safe bool) error {
	row, col, err := board.IndexToRowCol(idx)
	if err != nil {
		return err
	}

	if !board.HasRevealed() {
		_, err = board.Start(row, col, safe)
	} else {
		_, err = board.Reveal(row, col)
	}
	return err
}
