package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/they4kman/sweepcore/game"
	"github.com/they4kman/sweepcore/render"
)

const playHelp = `commands:
  reveal ROW COL | reveal INDEX   (r)
  flag ROW COL   | flag INDEX     (f)
  chord ROW COL  | chord INDEX    (c)
  print                           (p)
  quit                            (q)
`

// play reads one move per line from in and prints the board after each,
// until the game ends or input runs out.
func play(in io.Reader, out io.Writer, board *game.Board, safe, showMines bool) error {
	fmt.Fprint(out, render.Text(board, showMines))

	scanner := bufio.NewScanner(in)
	for !board.State().Terminal() && scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "q":
			return nil
		case "print", "p":
			fmt.Fprint(out, render.Text(board, showMines))
			continue
		case "help", "h", "?":
			fmt.Fprint(out, playHelp)
			continue
		}

		if err := move(board, fields, safe); err != nil {
			if errors.Is(err, game.ErrOutOfBounds) || errors.Is(err, game.ErrInvalidArgument) {
				fmt.Fprintf(out, "invalid move: %v\n", err)
				continue
			}
			return err
		}
		fmt.Fprint(out, render.Text(board, showMines || board.State().Terminal()))
	}

	switch board.State() {
	case game.Win:
		fmt.Fprintln(out, "WIN!")
	case game.Loss:
		fmt.Fprintln(out, "LOSE :(")
	}
	return scanner.Err()
}

func move(board *game.Board, fields []string, safe bool) error {
	parts := make([]int, 0, len(fields)-1)
	for _, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return errors.Wrapf(game.ErrInvalidArgument, "%q is not a number", field)
		}
		parts = append(parts, n)
	}

	loc, err := game.ParseLocator(parts...)
	if err != nil {
		return err
	}
	cell, err := board.Get(loc)
	if err != nil {
		return err
	}
	row, col, err := board.IndexToRowCol(cell.Index())
	if err != nil {
		return err
	}

	switch fields[0] {
	case "reveal", "r":
		if !board.HasRevealed() {
			_, err = board.Start(row, col, safe)
		} else {
			_, err = board.Reveal(row, col)
		}
	case "flag", "f":
		err = board.ToggleFlag(row, col)
	case "chord", "c":
		_, err = board.AutoReveal(row, col)
	default:
		err = errors.Wrapf(game.ErrInvalidArgument, "unknown command %q", fields[0])
	}
	return err
}
