package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/util/collections"
)

var Log = logrus.New()

// Director plays moves deduced from the numbers on the board, and guesses
// only when no deduction is available.
type Director struct {
	random.Director

	board *game.Board
}

// Observation states that exactly numMines of cells hold a mine.
type Observation struct {
	origin   int
	numMines int
	cells    collections.Set[int]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, idx := range collections.Sorted(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(fmt.Sprint(idx))
	}

	var originRepr string
	if observation.origin < 0 {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprint(observation.origin)
	}

	return fmt.Sprintf("Obs[%4s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.Director.Init(board)
}

func (director *Director) Act() (bool, error) {
	if !director.board.HasRevealed() {
		return director.Director.Act()
	}

	observations := director.observe()

	actors := []func([]Observation) (bool, error){
		director.actChord,
		director.actDeliberate,
		director.actSubset,
		director.actLowestProbability,
	}
	for _, actor := range actors {
		if acted, err := actor(observations); acted || err != nil {
			return acted, err
		}
	}
	return director.Director.Act()
}

// observe builds one observation per revealed number that still borders
// hidden cells.
func (director *Director) observe() []Observation {
	cells := director.board.Cells()

	var observations []Observation
	for _, cell := range cells {
		if !cell.IsRevealed() || !cell.HasProximity() || cell.Proximity() == 0 {
			continue
		}

		neighbors, err := director.board.Neighbors(game.ByIndex(cell.Index()))
		if err != nil {
			continue
		}

		observation := Observation{
			origin:   cell.Index(),
			numMines: cell.Proximity(),
			cells:    collections.NewSet[int](),
		}
		for _, n := range neighbors {
			switch cells[n].State() {
			case game.Flagged:
				observation.numMines--
			case game.Hidden:
				observation.cells.Add(n)
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, observation)
		}
	}
	return observations
}

// actChord chords on a number whose mines are all flagged.
func (director *Director) actChord(observations []Observation) (bool, error) {
	for _, observation := range observations {
		if observation.numMines != 0 {
			continue
		}

		row, col, err := director.board.IndexToRowCol(observation.origin)
		if err != nil {
			return false, err
		}
		Log.WithField("observation", observation).Debug("chord")
		revealed, err := director.board.AutoReveal(row, col)
		if err != nil || len(revealed) > 0 {
			return true, err
		}
	}
	return false, nil
}

// actDeliberate flags the cells of an observation that must all be mines.
func (director *Director) actDeliberate(observations []Observation) (bool, error) {
	for _, observation := range observations {
		if observation.numMines == observation.cells.Len() {
			Log.WithField("observation", observation).Debug("flag all")
			return true, director.flag(observation.cells)
		}
	}
	return false, nil
}

// actSubset compares observations whose cells contain one another: the
// cells outside the smaller one hold the difference in mines.
func (director *Director) actSubset(observations []Observation) (bool, error) {
	for _, inner := range observations {
		for _, outer := range observations {
			if inner.origin == outer.origin || inner.cells.Len() >= outer.cells.Len() {
				continue
			}
			if inner.cells.Intersection(outer.cells).Len() != inner.cells.Len() {
				continue
			}

			rest := outer.cells.Difference(inner.cells)
			numMines := outer.numMines - inner.numMines

			switch numMines {
			case 0:
				Log.WithFields(logrus.Fields{"inner": inner, "outer": outer}).Debug("reveal difference")
				return true, director.reveal(rest)
			case rest.Len():
				Log.WithFields(logrus.Fields{"inner": inner, "outer": outer}).Debug("flag difference")
				return true, director.flag(rest)
			}
		}
	}
	return false, nil
}

// actLowestProbability reveals a cell least likely to hold a mine.
func (director *Director) actLowestProbability(observations []Observation) (bool, error) {
	lowestProbability := math.Inf(1)
	candidates := collections.NewSet[int]()

	for _, observation := range observations {
		probability := observation.MineProbability()
		if probability < lowestProbability {
			lowestProbability = probability
			candidates = collections.NewSet[int]()
		}
		if probability == lowestProbability {
			for idx := range observation.cells {
				candidates.Add(idx)
			}
		}
	}
	if candidates.Len() == 0 {
		return false, nil
	}

	sorted := collections.Sorted(candidates)
	guess := sorted[director.Rand().IntN(len(sorted))]

	Log.WithFields(logrus.Fields{
		"cell":        guess,
		"probability": lowestProbability,
	}).Debug("guess")
	return true, director.reveal(collections.NewSet(guess))
}

func (director *Director) flag(cells collections.Set[int]) error {
	for _, idx := range collections.Sorted(cells) {
		row, col, err := director.board.IndexToRowCol(idx)
		if err != nil {
			return err
		}
		if err := director.board.ToggleFlag(row, col); err != nil {
			return err
		}
	}
	return nil
}

func (director *Director) reveal(cells collections.Set[int]) error {
	for _, idx := range collections.Sorted(cells) {
		if director.board.State().Terminal() {
			return nil
		}
		if err := random.Reveal(director.board, idx, false); err != nil {
			return err
		}
	}
	return nil
}
