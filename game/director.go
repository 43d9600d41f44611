package game

import "github.com/sirupsen/logrus"

// Director plays a board on its own.
type Director interface {
	// Init binds the director to a board before its first move.
	Init(*Board)

	// Act performs a single move and reports whether one was made.
	Act() (bool, error)
}

// RunDirector lets director play board until the game ends, the director
// has no move left, or maxSteps moves were made (maxSteps <= 0 means no
// limit). It returns the number of moves made.
func RunDirector(board *Board, director Director, maxSteps int) (int, error) {
	director.Init(board)

	steps := 0
	for !board.State().Terminal() && (maxSteps <= 0 || steps < maxSteps) {
		acted, err := director.Act()
		if err != nil {
			return steps, err
		}
		if !acted {
			break
		}
		steps++
	}

	board.log.WithFields(logrus.Fields{
		"steps": steps,
		"state": board.State(),
	}).Info("director finished")
	return steps, nil
}
