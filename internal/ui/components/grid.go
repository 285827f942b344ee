package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is one column of a Grid. The last column absorbs leftover width.
type Column struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

var (
	gridHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)
	gridRuleStyle = lipgloss.NewStyle().
			Foreground(borderColor)
	gridActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da")).
			Background(lipgloss.Color("#1f2530")).
			Bold(true)
)

const gridSep = "  "

// Grid renders rows under a header and a rule, each line exactly width columns.
// activeRow highlights one data row; pass -1 for none.
func Grid(columns []Column, rows [][]string, width, activeRow int) string {
	if width <= 0 || len(columns) == 0 {
		return ""
	}
	cols := fitColumns(columns, width)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	lines := []string{
		gridHeaderStyle.Render(gridLine(cols, headers)),
		gridRuleStyle.Render(strings.Repeat("─", width)),
	}
	for i, row := range rows {
		line := gridLine(cols, row)
		if i == activeRow {
			line = gridActiveStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func fitColumns(columns []Column, width int) []Column {
	cols := append([]Column(nil), columns...)
	used := len(gridSep) * (len(cols) - 1)
	for i := range cols {
		if cols[i].Width < 1 {
			cols[i].Width = 1
		}
		used += cols[i].Width
	}
	last := &cols[len(cols)-1]
	last.Width += width - used
	if last.Width < 1 {
		last.Width = 1
	}
	return cols
}

func gridLine(cols []Column, cells []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		parts[i] = gridCell(text, c.Width, c.Align)
	}
	return strings.Join(parts, gridSep)
}

func gridCell(text string, width int, align lipgloss.Position) string {
	text = ClampTextWidth(text, width)
	pad := width - lipgloss.Width(text)
	if pad <= 0 {
		return text
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + text
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return padRight(text, width)
	}
}
