package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagdeck/cli/internal/selection"
	"github.com/gravitrone/tagdeck/cli/internal/ui/components"
)

// galleryTop is the screen row of the first gallery item; the header sits above.
const galleryTop = 1

type longPressMsg struct{ gen uint64 }

type openEditorMsg struct{ ids []string }

// GalleryModel lists the items and drives the selection with keys and mouse.
type GalleryModel struct {
	set   *selection.Set
	press *selection.Press
	list  *components.List
	width int
}

// NewGalleryModel builds the gallery over ids.
func NewGalleryModel(set *selection.Set, press *selection.Press) GalleryModel {
	list := components.NewList(20)
	list.SetItems(set.Items())
	return GalleryModel{set: set, press: press, list: list}
}

func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case longPressMsg:
		if id, ok := m.press.Timeout(msg.gen); ok {
			m.set.LongPress(id)
		}
	}
	return m, nil
}

func (m GalleryModel) handleKey(msg tea.KeyMsg) (GalleryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.list.Up()
	case key.Matches(msg, keys.Down):
		m.list.Down()
	case key.Matches(msg, keys.Click):
		if id, ok := m.current(); ok {
			m.set.Click(id)
		}
	case key.Matches(msg, keys.Toggle):
		if id, ok := m.current(); ok {
			m.set.Toggle(id)
		}
	case key.Matches(msg, keys.SelectAll):
		m.set.SelectAll()
	case key.Matches(msg, keys.SelectNone):
		m.set.SelectNone()
	case key.Matches(msg, keys.Edit):
		return m, m.openEditor()
	}
	return m, nil
}

func (m GalleryModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		id, ok := m.itemAt(msg.Y)
		if !ok {
			return nil
		}
		if msg.Button == tea.MouseButtonRight {
			if m.press.ContextMenu() {
				return nil
			}
			if m.set.Count() == 0 {
				return func() tea.Msg { return openEditorMsg{ids: []string{id}} }
			}
			return m.openEditor()
		}
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.list.SetCursor(m.list.RelToAbs(msg.Y - galleryTop))
		gen := m.press.Down(id, msg.X, msg.Y)
		return tea.Tick(m.press.Hold, func(time.Time) tea.Msg {
			return longPressMsg{gen: gen}
		})
	case tea.MouseActionMotion:
		m.press.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		// A drag past the tolerance has cleared the target: not a click.
		target := m.press.Target()
		m.press.Up()
		if !m.press.Click() || target == "" {
			return nil
		}
		if id, ok := m.itemAt(msg.Y); ok && id == target {
			m.set.Click(id)
		}
	}
	return nil
}

func (m GalleryModel) openEditor() tea.Cmd {
	ids := m.set.IDs()
	if len(ids) == 0 {
		return nil
	}
	return func() tea.Msg { return openEditorMsg{ids: ids} }
}

func (m GalleryModel) current() (string, bool) {
	idx := m.list.Selected()
	if idx < 0 || idx >= m.list.Len() {
		return "", false
	}
	return m.list.Items[idx], true
}

func (m GalleryModel) itemAt(y int) (string, bool) {
	rel := y - galleryTop
	if rel < 0 || rel >= len(m.list.Visible()) {
		return "", false
	}
	return m.list.Items[m.list.RelToAbs(rel)], true
}

// SetHeight sizes the visible page.
func (m *GalleryModel) SetHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	m.list.PageSize = rows
	m.list.SetCursor(m.list.Selected())
}

func (m GalleryModel) Header() string {
	return HeaderStyle.Render("tagdeck") + MutedStyle.Render(fmt.Sprintf("  %d items", m.list.Len()))
}

func (m GalleryModel) View() string {
	if m.list.Len() == 0 {
		return MutedStyle.Render("  No items.")
	}
	visible := m.list.Visible()
	lines := make([]string, 0, len(visible))
	for i, id := range visible {
		abs := m.list.RelToAbs(i)
		mark := "[ ]"
		if m.set.IsSelected(id) {
			mark = CheckedStyle.Render("[x]")
		}
		label := components.ClampTextWidth(id, m.width-8)
		if m.press.State() == selection.Pressing && m.press.Target() == id {
			label = PressingStyle.Render(label)
		} else {
			label = NormalStyle.Render(label)
		}
		cursor := "  "
		if m.list.IsSelected(abs) {
			cursor = CursorStyle.Render("> ")
		}
		lines = append(lines, cursor+mark+" "+label)
	}
	return strings.Join(lines, "\n")
}
