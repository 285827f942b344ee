package ui

import "github.com/charmbracelet/lipgloss"

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#7f57b4") // purple
	ColorSecondary  = lipgloss.Color("#436b77") // teal
	ColorAccent     = lipgloss.Color("#a7754e") // warm
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorSuccess    = lipgloss.Color("#3f866b") // green
	ColorError      = lipgloss.Color("#e06c75") // red
	ColorWarning    = lipgloss.Color("#c78854") // warning
)

// --- Reusable Styles ---

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	CheckedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	PressingStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	BusyStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Italic(true)

	// MarkStyle highlights the typed fragment inside a suggestion.
	MarkStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorAccent).
			Bold(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)
