package game

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	markerMine  = 'm'
	markerEmpty = 'e'
)

// Layout records the mine positions of a board as rows of 'm' (mine) and
// 'e' (empty) markers. It holds no play state.
type Layout struct {
	Seed  uint64 `yaml:"seed,omitempty"`
	Board string `yaml:"board"`
}

func (layout *Layout) Serialize() (string, error) {
	out, err := yaml.Marshal(layout)
	if err != nil {
		return "", errors.Wrap(err, "marshal layout")
	}
	return string(out), nil
}

func LoadLayout(in string) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return nil, errors.Wrap(err, "unmarshal layout")
	}
	return &layout, nil
}

// CreateBoard builds the board described by the layout. Its seed drives
// later mine relocation.
func (layout *Layout) CreateBoard() (*Board, error) {
	rows := strings.Split(strings.TrimSpace(layout.Board), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	var rnd *rand.Rand
	if layout.Seed != 0 {
		rnd = rand.New(rand.NewPCG(layout.Seed, layout.Seed))
	}
	return fromLayout(rnd, rows...)
}

// Layout returns the mine layout of board.
func (board *Board) Layout() *Layout {
	var b strings.Builder
	for row := 0; row < board.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < board.columns; col++ {
			if board.cells[row*board.columns+col].isMine {
				b.WriteByte(markerMine)
			} else {
				b.WriteByte(markerEmpty)
			}
		}
	}
	return &Layout{Board: b.String()}
}

// FromLayout builds an initialized board from rows of 'm' and 'e' markers,
// bypassing random placement. The layout must satisfy the same size and
// mine count limits as NewBoard.
func FromLayout(rows ...string) (*Board, error) {
	return fromLayout(nil, rows...)
}

func fromLayout(rnd *rand.Rand, rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrConfiguration, "layout is empty")
	}

	columns := len(rows[0])
	numMines := 0
	for r, row := range rows {
		if len(row) != columns {
			return nil, errors.Wrapf(ErrConfiguration, "layout is jagged: row %d has %d cells, want %d", r, len(row), columns)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case markerMine:
				numMines++
			case markerEmpty:
			default:
				return nil, errors.Wrapf(ErrConfiguration, "layout marker %q at (%d, %d) is not 'm' or 'e'", row[c], r, c)
			}
		}
	}

	if err := validateDimensions(len(rows), columns, numMines); err != nil {
		return nil, err
	}

	board := allocateBoard(len(rows), columns, numMines, rnd)
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			board.cells[r*columns+c].isMine = row[c] == markerMine
		}
	}
	return board, nil
}
