package components

import "github.com/charmbracelet/lipgloss"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#c78854")).
			Padding(1, 2).
			Width(40)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	dialogHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))
)

// ConfirmDialog renders a yes/no confirmation. The message may span lines.
func ConfirmDialog(title, message string) string {
	return dialogStyle.Render(
		dialogTitleStyle.Render(SanitizeOneLine(title)) + "\n\n" +
			dialogBodyStyle.Render(SanitizeText(message)) + "\n\n" +
			dialogHintStyle.Render("y: confirm | n: cancel"),
	)
}
