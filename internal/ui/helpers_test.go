package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/tagdeck/cli/internal/api"
	"github.com/gravitrone/tagdeck/cli/internal/config"
)

// fakeGallery is an in-memory tag server speaking the /ac and /tags contracts.
type fakeGallery struct {
	mu        sync.Mutex
	tags      map[string]map[string]string
	vocab     map[string]int
	fragments []string
	requests  []api.TagsRequest
	failWith  int
}

func newFakeGallery(t *testing.T) (*fakeGallery, *api.Client) {
	t.Helper()
	g := &fakeGallery{
		tags:  map[string]map[string]string{},
		vocab: map[string]int{},
	}
	srv := httptest.NewServer(g)
	t.Cleanup(srv.Close)
	return g, api.NewClient(srv.URL)
}

func (g *fakeGallery) tag(id, tag, cls string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.tags[id] == nil {
		g.tags[id] = map[string]string{}
	}
	g.tags[id][tag] = cls
	g.vocab[tag]++
}

func (g *fakeGallery) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch r.URL.Path {
	case "/ac":
		fragment := r.URL.Query().Get("fragment")
		g.fragments = append(g.fragments, fragment)
		out := []api.Suggestion{}
		for tag, n := range g.vocab {
			if strings.Contains(tag, fragment) {
				out = append(out, api.Suggestion{Tag: tag, Count: n})
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
		json.NewEncoder(w).Encode(out)
	case "/tags":
		var req api.TagsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		g.requests = append(g.requests, req)
		if g.failWith != 0 {
			http.Error(w, "store unavailable", g.failWith)
			return
		}
		for _, id := range req.IDs {
			switch req.Action {
			case api.ActionAddTag:
				if g.tags[id] == nil {
					g.tags[id] = map[string]string{}
				}
				g.tags[id][req.Tag] = ""
				g.vocab[req.Tag]++
			case api.ActionRmTag:
				delete(g.tags[id], req.Tag)
			}
		}
		json.NewEncoder(w).Encode(g.aggregate(req.IDs))
	default:
		http.NotFound(w, r)
	}
}

func (g *fakeGallery) aggregate(ids []string) []api.TagRecord {
	counts := map[string]int{}
	classes := map[string]string{}
	for _, id := range ids {
		for tag, cls := range g.tags[id] {
			counts[tag]++
			classes[tag] = cls
		}
	}
	out := make([]api.TagRecord, 0, len(counts))
	for tag, n := range counts {
		out = append(out, api.TagRecord{Tag: tag, Cls: classes[tag], Count: n, Search: "t=" + tag})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}

func (g *fakeGallery) lastRequest() api.TagsRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.requests[len(g.requests)-1]
}

func (g *fakeGallery) requestCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func (g *fakeGallery) seenFragments() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.fragments...)
}

func newTestApp(t *testing.T, client *api.Client, ids ...string) App {
	t.Helper()
	app := NewApp(client, &config.Config{BaseURL: client.BaseURL(), LongPressMS: 1}, ids, nil)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App)
}

// drain runs cmd and every command it leads to, feeding messages back into m.
// It reports whether the program asked to quit.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) (tea.Model, bool) {
	t.Helper()
	quit := false
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "command loop did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			quit = true
		default:
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		}
	}
	return m, quit
}

func send(t *testing.T, app App, msgs ...tea.Msg) App {
	t.Helper()
	var m tea.Model = app
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		m, _ = drain(t, m, cmd)
	}
	return m.(App)
}

func typeText(t *testing.T, app App, text string) App {
	t.Helper()
	for _, r := range text {
		app = send(t, app, runeKey(r))
	}
	return app
}

func runeKey(r rune) tea.KeyMsg {
	if r == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
