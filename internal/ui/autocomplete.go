package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagdeck/cli/internal/suggest"
	"github.com/gravitrone/tagdeck/cli/internal/ui/components"
)

const dropdownPageSize = 8

type widgetID int

const (
	widgetSearch widgetID = iota
	widgetNewTag
)

type suggestResultMsg struct {
	widget widgetID
	result suggest.Result
}

// autocomplete is a text input with a suggestion dropdown fed by a Fetcher.
type autocomplete struct {
	widget     widgetID
	input      textinput.Model
	fetcher    *suggest.Fetcher
	dropdown   *components.List
	candidates []suggest.Candidate
}

func newAutocomplete(widget widgetID, fetcher *suggest.Fetcher, placeholder string) autocomplete {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholder
	// A static cursor keeps redraws tied to input.
	input.Cursor.SetMode(cursor.CursorStatic)
	return autocomplete{
		widget:   widget,
		input:    input,
		fetcher:  fetcher,
		dropdown: components.NewDropdown(dropdownPageSize),
	}
}

func (a *autocomplete) Value() string { return a.input.Value() }

func (a *autocomplete) open() bool { return len(a.candidates) > 0 }

func (a *autocomplete) highlighted() (suggest.Candidate, bool) {
	idx := a.dropdown.Selected()
	if idx < 0 || idx >= len(a.candidates) {
		return suggest.Candidate{}, false
	}
	return a.candidates[idx], true
}

// setValue replaces the input text and places the cursor, dropping any
// suggestions for the old text.
func (a *autocomplete) setValue(text string, pos int) {
	a.input.SetValue(text)
	a.input.SetCursor(pos)
	a.close()
}

// close hides the dropdown and invalidates requests still in flight.
func (a *autocomplete) close() {
	a.fetcher.Close()
	a.candidates = nil
	a.dropdown.SetItems(nil)
}

// trigger issues a fetch for the token under the cursor.
func (a *autocomplete) trigger() tea.Cmd {
	req, ok := a.fetcher.Trigger(a.input.Value(), a.input.Position())
	if !ok {
		a.candidates = nil
		a.dropdown.SetItems(nil)
		return nil
	}
	widget := a.widget
	return func() tea.Msg {
		return suggestResultMsg{widget: widget, result: req.Run()}
	}
}

// apply renders res unless a newer request superseded it.
func (a *autocomplete) apply(res suggest.Result) bool {
	if !a.fetcher.Accept(res) {
		return false
	}
	a.candidates = res.Candidates
	labels := make([]string, len(res.Candidates))
	for i, c := range res.Candidates {
		labels[i] = c.Tag
	}
	a.dropdown.SetItems(labels)
	return true
}

// choose splices the highlighted candidate into the text.
func (a *autocomplete) choose() bool {
	c, ok := a.highlighted()
	if !ok {
		return false
	}
	text, pos := a.fetcher.Select(a.input.Value(), a.input.Position(), c)
	a.setValue(text, pos)
	return true
}

// handleKey feeds a key to the dropdown or the input. Enter and esc are left to
// the caller.
func (a *autocomplete) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.open() && dropdownKey(msg) {
		if key.Matches(msg, keys.Up) {
			a.dropdown.Up()
		} else {
			a.dropdown.Down()
		}
		return nil
	}
	before, pos := a.input.Value(), a.input.Position()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == before && a.input.Position() == pos {
		return cmd
	}
	return tea.Batch(cmd, a.trigger())
}

func (a *autocomplete) viewDropdown(width int) string {
	if !a.open() {
		return ""
	}
	visible := a.dropdown.Visible()
	lines := make([]string, 0, len(visible))
	for i := range visible {
		abs := a.dropdown.RelToAbs(i)
		line := renderCandidate(a.candidates[abs], width-4)
		if a.dropdown.IsSelected(abs) {
			lines = append(lines, CursorStyle.Render("> ")+line)
		} else {
			lines = append(lines, "  "+line)
		}
	}
	if more := len(a.candidates) - a.dropdown.Offset - len(visible); more > 0 {
		lines = append(lines, MutedStyle.Render(fmt.Sprintf("  +%d more", more)))
	}
	return strings.Join(lines, "\n")
}

// renderCandidate draws "before[match]after (count)" with the match marked.
func renderCandidate(c suggest.Candidate, width int) string {
	count := fmt.Sprintf(" (%d)", c.Count)
	room := width - len(count)
	before := components.SanitizeOneLine(c.Before)
	match := components.SanitizeOneLine(c.Match)
	after := components.SanitizeOneLine(c.After)
	if room > 0 && len([]rune(before+match+after)) > room {
		return NormalStyle.Render(components.ClampTextWidth(before+match+after, room)) + CountStyle.Render(count)
	}
	return NormalStyle.Render(before) + MarkStyle.Render(match) + NormalStyle.Render(after) + CountStyle.Render(count)
}
