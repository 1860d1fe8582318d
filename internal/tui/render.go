package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

var (
	givenStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("15")).Bold(true)

	filledStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("39"))

	emptyStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Foreground(lipgloss.Color("240"))

	placeStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("34")).Foreground(lipgloss.Color("15"))

	undoStyle = lipgloss.NewStyle().
			PaddingLeft(1).PaddingRight(1).
			Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15"))

	sepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// RenderBoard draws the grid with box separators. When step is non-nil,
// the cell it touched is highlighted green for a placement and red for
// a backtrack-undo.
func RenderBoard(b *domain.Board, step *ports.Step) string {
	var sb strings.Builder
	for r := 0; r < domain.Size; r++ {
		if r > 0 && r%domain.BoxSize == 0 {
			sb.WriteString(sepStyle.Render("------+-------+------"))
			sb.WriteByte('\n')
		}
		for c := 0; c < domain.Size; c++ {
			if c > 0 && c%domain.BoxSize == 0 {
				sb.WriteString(sepStyle.Render("|"))
			}
			sb.WriteString(renderCell(b, step, r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderCell(b *domain.Board, step *ports.Step, r, c int) string {
	v := b.Values[r][c]
	text := "."
	if v != 0 {
		text = string('0' + rune(v))
	}
	switch {
	case step != nil && step.Cell.Row == r && step.Cell.Col == c:
		if step.Kind == ports.StepPlace {
			return placeStyle.Render(text)
		}
		return undoStyle.Render(text)
	case b.Fixed[r][c]:
		return givenStyle.Render(text)
	case v != 0:
		return filledStyle.Render(text)
	}
	return emptyStyle.Render(text)
}
