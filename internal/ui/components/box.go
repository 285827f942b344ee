package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	borderColor       = lipgloss.Color("#273540")
	activeBorderColor = lipgloss.Color("#7f57b4")

	boxBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	boxBorderActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(activeBorderColor).
			Padding(0, 1)

	boxHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	errorBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7a2f3a")).
			Padding(0, 1)

	errorHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))
)

// boxWidth uses ~70% of the terminal, between 40 and 80 columns.
func boxWidth(width int) int {
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func safeBoxWidth(width int) int {
	w := boxWidth(width)
	if width > 0 && w > width {
		return width
	}
	return w
}

// frameWidth is the style width that renders a box exactly width columns wide,
// since the border is drawn outside the style width.
func frameWidth(width int) int {
	w := safeBoxWidth(width)
	if w <= 2 {
		return 0
	}
	return w - 2
}

// Box renders content inside a bordered pane exactly width columns wide. Unlike
// the titled boxes it does not scale to the terminal, so it can nest.
func Box(content string, width int) string {
	return boxBorder.Width(paneWidth(width)).Render(content)
}

// ActiveBox is Box with the focus border.
func ActiveBox(content string, width int) string {
	return boxBorderActive.Width(paneWidth(width)).Render(content)
}

func paneWidth(width int) int {
	if width <= 2 {
		return 0
	}
	return width - 2
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	w := safeBoxWidth(width)
	// Border adds 2, padding adds 2.
	if w <= 4 {
		return 0
	}
	return w - 4
}

// ClampTextWidth sanitizes text to one line and truncates it to width columns.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

// ErrorBox renders a red bordered box for request failures.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorHeaderStyle.Render(title)
		if message != "" {
			header += "\n"
		}
	}
	return errorBorder.Width(frameWidth(width)).Render(header + errorBodyStyle.Render(message))
}

// TitledBox renders a box with its title set into the top border.
func TitledBox(title, content string, width int) string {
	return titledBoxWithStyle(title, content, width, boxBorder, borderColor)
}

// ActiveTitledBox is TitledBox with the focus border.
func ActiveTitledBox(title, content string, width int) string {
	return titledBoxWithStyle(title, content, width, boxBorderActive, activeBorderColor)
}

func titledBoxWithStyle(title, content string, width int, boxStyle lipgloss.Style, color lipgloss.Color) string {
	boxed := boxStyle.Width(frameWidth(width)).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middle := lineWidth - 2
	label := truncateRunes(fmt.Sprintf(" %s ", SanitizeOneLine(title)), middle)
	rest := middle - lipgloss.Width(label) - 1
	if rest < 0 {
		rest = 0
	}

	edge := lipgloss.NewStyle().Foreground(color)
	lead := 1
	if middle-lipgloss.Width(label) < 1 {
		lead = 0
	}
	lines[0] = edge.Render(border.TopLeft+strings.Repeat(border.Top, lead)) +
		boxHeaderStyle.Render(label) +
		edge.Render(strings.Repeat(border.Top, rest)+border.TopRight)
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
