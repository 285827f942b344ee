package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL)
	return srv, client
}

func TestSuggestSendsModeAndFragment(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ac", r.URL.Path)
		assert.Equal(t, "search", r.URL.Query().Get("mode"))
		assert.Equal(t, "do g", r.URL.Query().Get("fragment"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"tag": "dog", "count": 3},
			{"tag": "dogma", "count": 1},
		})
	})

	got, err := client.Suggest(ModeSearch, "do g")
	require.NoError(t, err)
	assert.Equal(t, []Suggestion{{Tag: "dog", Count: 3}, {Tag: "dogma", Count: 1}}, got)
}

func TestListTagsPostsAction(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tags", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gettags", body["action"])
		assert.Equal(t, []any{"a", "b"}, body["ids"])
		_, hasTag := body["tag"]
		_, hasCls := body["cls"]
		assert.False(t, hasTag)
		assert.False(t, hasCls)
		json.NewEncoder(w).Encode([]map[string]any{
			{"tag": "red", "count": 2},
			{"tag": "cat", "cls": "animal", "count": 1, "search": "t=cat"},
		})
	})

	got, err := client.ListTags([]string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, TagRecord{Tag: "red", Count: 2}, got[0])
	assert.Equal(t, "animal", got[1].Cls)
	assert.Equal(t, "t=cat", got[1].Search)
}

func TestAddTagOmitsClass(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "addtag", body["action"])
		assert.Equal(t, "red", body["tag"])
		_, hasCls := body["cls"]
		assert.False(t, hasCls)
		json.NewEncoder(w).Encode([]map[string]any{{"tag": "red", "count": 3}})
	})

	got, err := client.AddTag("red", []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []TagRecord{{Tag: "red", Count: 3}}, got)
}

func TestRemoveTagAlwaysSendsClass(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rmtag", body["action"])
		assert.Equal(t, "", body["cls"])
		w.Write([]byte("[]"))
	})

	got, err := client.RemoveTag("red", "", []string{"1"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNonOKStatusIsStatusError(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "One or more specified IDs are invalid.", http.StatusBadRequest)
	})

	_, err := client.ListTags([]string{"nope"})
	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "failed: 400 Bad Request", statusErr.Error())
	assert.Contains(t, statusErr.Body, "invalid")
}

func TestCreatedStatusIsStillAFailure(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("[]"))
	})

	_, err := client.AddTag("red", []string{"1"})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusCreated, statusErr.StatusCode)
}

func TestBasicAuthIsSent(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "secret", pass)
		w.Write([]byte("[]"))
	})
	client.SetCredentials("alice", "secret")

	_, err := client.ListTags([]string{"1"})
	require.NoError(t, err)
}

func TestMetricsCountOutcomes(t *testing.T) {
	fail := false
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("[]"))
	})

	_, err := client.Suggest(ModeAddTag, "a")
	require.NoError(t, err)
	fail = true
	_, err = client.ListTags([]string{"1"})
	require.Error(t, err)

	m := client.Metrics()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests(endpointSuggest, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests(endpointTags, outcomeStatus)))

	path := filepath.Join(t.TempDir(), "tagdeck.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tagdeck_api_requests_total")
}

func TestSearchURLEscapesQuery(t *testing.T) {
	client := NewClient("http://gallery.local/")
	assert.Equal(t, "http://gallery.local/search?query=t%3Ddog+cat", client.SearchURL("t=dog cat"))
}
