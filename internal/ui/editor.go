package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/tagdeck/cli/internal/suggest"
	"github.com/gravitrone/tagdeck/cli/internal/tagedit"
	"github.com/gravitrone/tagdeck/cli/internal/ui/components"
)

type tagResultMsg struct{ result tagedit.Result }

type editorClosedMsg struct{}

var rowColumns = []components.Column{
	{Header: "Tag", Width: 24},
	{Header: "Class", Width: 12},
	{Header: "Count", Width: 6, Align: lipgloss.Right},
}

// EditorModel is the popup that edits the tags of the selected items.
type EditorModel struct {
	editor    *tagedit.Editor
	ac        autocomplete
	rows      *components.List
	rowsFocus bool
	logger    *slog.Logger
	width     int
}

// NewEditorModel wraps editor with a new-tag input fed by fetcher.
func NewEditorModel(editor *tagedit.Editor, fetcher *suggest.Fetcher, logger *slog.Logger) EditorModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return EditorModel{
		editor: editor,
		ac:     newAutocomplete(widgetNewTag, fetcher, "new tag"),
		rows:   components.NewList(12),
		logger: logger,
	}
}

// IsOpen reports whether the popup is shown.
func (m EditorModel) IsOpen() bool { return m.editor.IsOpen() }

// Open shows the popup for ids and loads their tags.
func (m *EditorModel) Open(ids []string) tea.Cmd {
	req, err := m.editor.Open(ids)
	m.rows.SetItems(nil)
	m.rowsFocus = false
	m.ac.setValue("", 0)
	m.editor.SetNewTag("")
	focus := m.ac.input.Focus()
	if err != nil {
		m.logger.Warn("open tag editor", "err", err)
		return focus
	}
	return tea.Batch(focus, runTagRequest(req))
}

func (m *EditorModel) close() tea.Cmd {
	m.editor.Close()
	m.ac.input.Blur()
	m.ac.close()
	return func() tea.Msg { return editorClosedMsg{} }
}

func runTagRequest(req tagedit.Request) tea.Cmd {
	return func() tea.Msg { return tagResultMsg{result: req()} }
}

func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tagResultMsg:
		m.apply(msg.result)
		return m, nil
	case suggestResultMsg:
		if msg.widget == widgetNewTag {
			m.ac.apply(msg.result)
		}
		return m, nil
	case tea.KeyMsg:
		if !m.editor.IsOpen() {
			return m, nil
		}
		if _, ok := m.editor.Confirming(); ok {
			return m.handleConfirm(msg)
		}
		if key.Matches(msg, keys.Focus) {
			m.rowsFocus = !m.rowsFocus
			if m.rowsFocus {
				m.ac.input.Blur()
				m.ac.close()
				return m, nil
			}
			return m, m.ac.input.Focus()
		}
		if m.rowsFocus {
			return m.handleRowsKey(msg)
		}
		return m.handleInputKey(msg)
	}
	return m, nil
}

func (m EditorModel) handleInputKey(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter):
		if m.ac.choose() {
			m.editor.SetNewTag(m.ac.Value())
			return m, nil
		}
		m.editor.SetNewTag(m.ac.Value())
		req, err := m.editor.SubmitAdd()
		if err != nil {
			m.logSkipped("add", err)
			return m, nil
		}
		m.ac.close()
		return m, runTagRequest(req)
	case key.Matches(msg, keys.Back):
		if m.ac.open() {
			m.ac.close()
			return m, nil
		}
		return m, m.close()
	}
	cmd := m.ac.handleKey(msg)
	m.editor.SetNewTag(m.ac.Value())
	return m, cmd
}

func (m EditorModel) handleRowsKey(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.rows.Up()
	case key.Matches(msg, keys.Down):
		m.rows.Down()
	case key.Matches(msg, keys.Remove):
		m.editor.RequestRemove(m.rows.Selected())
	case key.Matches(msg, keys.Back):
		return m, m.close()
	}
	return m, nil
}

func (m EditorModel) handleConfirm(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	var confirmed bool
	switch {
	case key.Matches(msg, keys.Yes):
		confirmed = true
	case key.Matches(msg, keys.No):
	default:
		return m, nil
	}
	req, err := m.editor.ResolveRemove(confirmed)
	if err != nil {
		m.logSkipped("remove", err)
		return m, nil
	}
	return m, runTagRequest(req)
}

func (m *EditorModel) apply(res tagedit.Result) {
	m.editor.Apply(res)
	b.WriteString(m.viewRows(inner))
	if m.editor.RemovePending() {
		b.WriteString("\n" + BusyStyle.Render("remove (busy)"))
	}

	b.WriteString("\n")
	b.WriteString(m.ac.input.View())
	if m.editor.AddPending() {
		b.WriteString(" " + BusyStyle.Render("(busy)"))
	}
	if dd := m.ac.viewDropdown(inner); dd != "" {
		b.WriteString("\n" + dd)
	}

	title := m.editor.Title()
	if strings.HasPrefix(title, "failed:") {
		return components.ErrorBox(title, b.String(), m.width)
	}
	return components.ActiveTitledBox(title, b.String(), m.width)
}

// viewRows draws the tag rows in their own pane, highlighted while it has focus.
func (m EditorModel) viewRows(width int) string {
	records := m.editor.Rows()
	content := MutedStyle.Render("No tags.")
	if len(records) > 0 {
		cells := make([][]string, len(records))
		for i, r := range records {
			cells[i] = []string{r.Tag, r.Cls, fmt.Sprintf("(%d)", r.Count)}
		}
		active := -1
		if m.rowsFocus {
			active = m.rows.Selected()
		}
		content = components.Grid(rowColumns, cells, width-4, active)
	}
	if m.rowsFocus {
		return components.ActiveBox(content, width)
	}
	return components.Box(content, width)
}
