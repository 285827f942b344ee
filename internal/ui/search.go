package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagdeck/cli/internal/suggest"
	"github.com/gravitrone/tagdeck/cli/internal/ui/components"
)

type searchSubmitMsg struct{ query string }

type searchBlurMsg struct{}

// SearchModel is the query box with operator-token autocomplete.
type SearchModel struct {
	ac      autocomplete
	focused bool
	width   int
}

// NewSearchModel builds the search box over fetcher.
func NewSearchModel(fetcher *suggest.Fetcher) SearchModel {
	return SearchModel{
		ac: newAutocomplete(widgetSearch, fetcher, "t~tag, -t~tag, t=tag..."),
	}
}

// Focus gives the search box the keyboard.
func (m *SearchModel) Focus() tea.Cmd {
	m.focused = true
	return m.ac.input.Focus()
}

// Blur returns the keyboard to the gallery and hides suggestions.
func (m *SearchModel) Blur() {
	m.focused = false
	m.ac.input.Blur()
	m.ac.close()
}

// Query is the current search text.
func (m SearchModel) Query() string { return m.ac.Value() }

func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestResultMsg:
		if msg.widget == widgetSearch {
			m.ac.apply(msg.result)
		}
		return m, nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Enter):
			if m.ac.choose() {
				return m, nil
			}
			query := strings.TrimSpace(m.ac.Value())
			m.ac.close()
			return m, func() tea.Msg { return searchSubmitMsg{query: query} }
		case key.Matches(msg, keys.Back):
			if m.ac.open() {
				m.ac.close()
				return m, nil
			}
			return m, func() tea.Msg { return searchBlurMsg{} }
		}
		return m, m.ac.handleKey(msg)
	}
	return m, nil
}

func (m SearchModel) View() string {
	body := m.ac.input.View()
	if dd := m.ac.viewDropdown(components.BoxContentWidth(m.width)); dd != "" {
		body += "\n" + dd
	}
	if m.focused {
		return components.ActiveTitledBox("Search", body, m.width)
	}
	return components.TitledBox("Search", body, m.width)
}
