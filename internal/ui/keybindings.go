package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagdeck/cli/internal/ui/components"
)

// --- Key Bindings ---

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Click      key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectNone key.Binding
	Edit       key.Binding
	Search     key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding

	Enter  key.Binding
	Back   key.Binding
	Focus  key.Binding
	Remove key.Binding
	Yes    key.Binding
	No     key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Click:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "click")),
	Toggle:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select")),
	SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
	SelectNone: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "none")),
	Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "tags")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),

	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	Remove: key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "remove")),
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	No:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
}

// dropdownKey reports whether msg is one of the arrow keys a dropdown owns.
// Letters stay with the text input.
func dropdownKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyUp || msg.Type == tea.KeyDown
}

func hints(bindings ...key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, components.Hint(h.Key, h.Desc))
	}
	return out
}
