package components

import "github.com/charmbracelet/lipgloss"

var (
	hintDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
	keyCapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#7f57b4")).
			Bold(true).
			Padding(0, 1).
			MarginRight(1)
	segmentStyle = lipgloss.NewStyle().
			Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().
			PaddingLeft(1)
)

// StatusBar renders the bottom bar: an optional badge followed by key hints,
// wrapped onto more rows when width is too small.
func StatusBar(badge string, hints []string, width int) string {
	segments := make([]string, 0, len(hints)+1)
	if badge != "" {
		segments = append(segments, badgeStyle.Render(badge))
	}
	for _, h := range hints {
		segments = append(segments, segmentStyle.Render(h))
	}
	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	return statusBarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Hint formats a single key hint like "add [enter]".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

func wrapSegments(segments []string, width int) []string {
	if len(segments) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	rows := make([]string, 0, 2)
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if currentWidth > 0 && currentWidth+segWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			currentWidth = 0
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	return rows
}
