package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/tagdeck/cli/internal/api"
	"github.com/gravitrone/tagdeck/cli/internal/config"
	"github.com/gravitrone/tagdeck/cli/internal/selection"
	"github.com/gravitrone/tagdeck/cli/internal/suggest"
	"github.com/gravitrone/tagdeck/cli/internal/tagedit"
	"github.com/gravitrone/tagdeck/cli/internal/ui/components"
)

// chromeRows is everything around the gallery: header, search box, status bar.
const chromeRows = 9

// --- Focus ---

type focus int

const (
	focusGallery focus = iota
	focusSearch
	focusEditor
)

// --- App Model ---

// App is the root TUI model: the gallery, the search box and the tag editor.
type App struct {
	client *api.Client
	logger *slog.Logger
	set    *selection.Set
	focus  focus
	width  int
	height int

	submitted string

	gallery GalleryModel
	search  SearchModel
	editor  EditorModel
}

// NewApp creates the root model over the gallery items in ids.
func NewApp(client *api.Client, cfg *config.Config, ids []string, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	lenient := cfg != nil && cfg.LenientSearch

	set := selection.New(ids)
	set.OnChange(func(count int) {
		logger.Debug("selection changed", "count", count)
	})
	press := selection.NewPress(cfg.LongPress(), cfg.Tolerance())

	searchCfg := suggest.SearchConfig(lenient)
	searchCfg.MaxResults = cfg.SuggestionLimit()
	addCfg := suggest.AddTagConfig()
	addCfg.MaxResults = cfg.SuggestionLimit()

	tags := tagedit.NewClient(client, logger)
	return App{
		client:  client,
		logger:  logger,
		set:     set,
		gallery: NewGalleryModel(set, press),
		search:  NewSearchModel(suggest.New(client, searchCfg)),
		editor:  NewEditorModel(tagedit.NewEditor(tags), suggest.New(client, addCfg), logger),
	}
}

// Submitted is the query the user searched for, empty when they just quit.
func (a App) Submitted() string {
	return a.submitted
}

// Selection exposes the selected item set.
func (a App) Selection() *selection.Set {
	return a.set
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.gallery.width = msg.Width
		a.search.width = msg.Width
		a.editor.width = msg.Width
		a.gallery.SetHeight(msg.Height - chromeRows)
		return a, nil

	case suggestResultMsg:
		var cmd tea.Cmd
		if msg.widget == widgetNewTag {
			a.editor, cmd = a.editor.Update(msg)
		} else {
			a.search, cmd = a.search.Update(msg)
		}
		return a, cmd

	case tagResultMsg:
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		return a, cmd

	case longPressMsg:
		var cmd tea.Cmd
		a.gallery, cmd = a.gallery.Update(msg)
		return a, cmd

	case openEditorMsg:
		a.search.Blur()
		a.focus = focusEditor
		return a, a.editor.Open(msg.ids)

	case editorClosedMsg:
		a.focus = focusGallery
		return a, nil

	case searchSubmitMsg:
		a.submitted = msg.query
		a.logger.Info("search submitted", "query", msg.query)
		return a, tea.Quit

	case searchBlurMsg:
		a.search.Blur()
		a.focus = focusGallery
		return a, nil

	case tea.MouseMsg:
		if a.focus == focusEditor {
			return a, nil
		}
		var cmd tea.Cmd
		a.gallery, cmd = a.gallery.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQuit) {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	switch a.focus {
	case focusEditor:
		a.editor, cmd = a.editor.Update(msg)
	case focusSearch:
		a.search, cmd = a.search.Update(msg)
	default:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Search):
			a.focus = focusSearch
			return a, a.search.Focus()
		}
		a.gallery, cmd = a.gallery.Update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	var b strings.Builder
	b.WriteString(a.gallery.Header())
	b.WriteString("\n")
	if a.focus == focusEditor && a.editor.IsOpen() {
		b.WriteString("\n")
		b.WriteString(a.editor.View())
	} else {
		b.WriteString(a.gallery.View())
		b.WriteString("\n\n")
		b.WriteString(a.search.View())
	}
	b.WriteString("\n")
	b.WriteString(components.StatusBar(a.statusBadge(), a.statusHints(), a.width))
	return b.String()
}

func (a App) statusBadge() string {
	if !a.set.StatusVisible() {
		return ""
	}
	return a.set.StatusText()
}

func (a App) statusHints() []string {
	switch a.focus {
	case focusEditor:
		if _, ok := a.editor.editor.Confirming(); ok {
			return hints(keys.Yes, keys.No)
		}
		if a.editor.rowsFocus {
			return hints(keys.Up, keys.Down, keys.Remove, keys.Focus, keys.Back)
		}
		return hints(keys.Enter, keys.Focus, keys.Back)
	case focusSearch:
		return hints(keys.Enter, keys.Back)
	}
	return hints(keys.Click, keys.Toggle, keys.SelectAll, keys.SelectNone, keys.Edit, keys.Search, keys.Quit)
}
