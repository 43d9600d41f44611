package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/they4kman/sweepcore/game"
)

var (
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	numberStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
)

// Glyph is the plain character shown for cell. Hidden mines are shown only
// when showMines is set.
func Glyph(cell game.Cell, showMines bool) string {
	switch {
	case cell.IsFlagged():
		return "F"
	case cell.IsRevealed() && cell.IsMine():
		return "*"
	case cell.IsRevealed() && cell.Proximity() == 0:
		return "."
	case cell.IsRevealed() && cell.HasProximity():
		return strconv.Itoa(cell.Proximity())
	case showMines && cell.IsMine():
		return "*"
	default:
		return "#"
	}
}

func style(cell game.Cell, glyph string) lipgloss.Style {
	switch glyph {
	case "F":
		return flagStyle
	case "*":
		return mineStyle
	case "#":
		return hiddenStyle
	default:
		if cell.HasProximity() {
			if s, ok := numberStyles[cell.Proximity()]; ok {
				return s
			}
		}
		return lipgloss.NewStyle()
	}
}

// Text draws board with row and column numbers and a status line. It only
// reads the board.
func Text(board *game.Board, showMines bool) string {
	var b strings.Builder

	b.WriteString("    ")
	for col := 0; col < board.Columns(); col++ {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-3d", col)))
	}
	b.WriteString("\n")

	cells := board.Cells()
	for row := 0; row < board.Rows(); row++ {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%3d ", row)))
		for col := 0; col < board.Columns(); col++ {
			cell := cells[row*board.Columns()+col]
			glyph := Glyph(cell, showMines)
			b.WriteString(style(cell, glyph).Render(glyph))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%03d  %s\n", board.MinesRemaining(), board.State())
	return b.String()
}
