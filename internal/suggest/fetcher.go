package suggest

import (
	"strings"

	"github.com/gravitrone/tagdeck/cli/internal/api"
	"github.com/gravitrone/tagdeck/cli/internal/query"
)

// DefaultMaxResults caps the candidate list shown for one request.
const DefaultMaxResults = 50

// Source is the remote side of the suggestion contract.
type Source interface {
	Suggest(mode api.SuggestMode, fragment string) ([]api.Suggestion, error)
}

// Config parameterizes one autocomplete widget.
type Config struct {
	Mode       api.SuggestMode
	Grammar    query.Grammar
	MaxResults int
}

// SearchConfig is the search box: operator tokens inside free text.
func SearchConfig(lenient bool) Config {
	grammar := query.Strict
	if lenient {
		grammar = query.Lenient
	}
	return Config{Mode: api.ModeSearch, Grammar: grammar, MaxResults: DefaultMaxResults}
}

// AddTagConfig is the new-tag input: the whole value is the fragment.
func AddTagConfig() Config {
	return Config{Mode: api.ModeAddTag, Grammar: query.Whole, MaxResults: DefaultMaxResults}
}

// Request is one issued fetch, tagged with its sequence number.
type Request struct {
	Seq  uint64
	Span query.Span
	Term query.Term

	source Source
	mode   api.SuggestMode
	max    int
}

// Result is what a Request produced. A failed fetch carries no candidates.
type Result struct {
	Seq        uint64
	Fragment   string
	Candidates []Candidate
	Failed     bool
}

// Run performs the fetch. It never fails: transport and decode errors yield an
// empty, Failed result.
func (r Request) Run() Result {
	res := Result{Seq: r.Seq, Fragment: r.Term.Fragment}
	items, err := r.source.Suggest(r.mode, r.Term.Fragment)
	if err != nil {
		res.Failed = true
		return res
	}
	if r.max > 0 && len(items) > r.max {
		items = items[:r.max]
	}
	res.Candidates = make([]Candidate, 0, len(items))
	for _, item := range items {
		res.Candidates = append(res.Candidates, NewCandidate(item, r.Term.Fragment))
	}
	return res
}

// Fetcher turns keystrokes into suggestion requests and drops stale responses.
// It is driven from a single event loop; only Request.Run may run elsewhere.
type Fetcher struct {
	source Source
	cfg    Config
	seq    uint64
}

// New creates a fetcher for one widget.
func New(source Source, cfg Config) *Fetcher {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	return &Fetcher{source: source, cfg: cfg}
}

// Config returns the widget configuration.
func (f *Fetcher) Config() Config {
	return f.cfg
}

// Trigger issues a request for the token at cursor, or reports false when no
// valid token is there. Every call supersedes all earlier requests.
func (f *Fetcher) Trigger(text string, cursor int) (Request, bool) {
	f.seq++
	span, term, ok := f.locate(text, cursor)
	if !ok {
		return Request{}, false
	}
	return Request{
		Seq:    f.seq,
		Span:   span,
		Term:   term,
		source: f.source,
		mode:   f.cfg.Mode,
		max:    f.cfg.MaxResults,
	}, true
}

// Accept reports whether res answers the latest issued request.
func (f *Fetcher) Accept(res Result) bool {
	return res.Seq != 0 && res.Seq == f.seq
}

// Close invalidates any request still in flight.
func (f *Fetcher) Close() {
	f.seq++
}

// Latest returns the sequence number of the newest request.
func (f *Fetcher) Latest() uint64 {
	return f.seq
}

// Select applies a chosen candidate to text, returning the new text and cursor.
func (f *Fetcher) Select(text string, cursor int, c Candidate) (string, int) {
	replacement := strings.TrimSpace(c.Tag)
	span, ok := query.Locate(text, cursor, f.cfg.Grammar)
	if !ok {
		span = query.Span{Start: cursor, End: cursor}
	}
	return query.Splice(text, span, replacement)
}

func (f *Fetcher) locate(text string, cursor int) (query.Span, query.Term, bool) {
	span, ok := query.Locate(text, cursor, f.cfg.Grammar)
	if !ok {
		return query.Span{}, query.Term{}, false
	}
	if f.cfg.Grammar == query.Whole {
		fragment := strings.TrimSpace(text)
		if fragment == "" {
			return query.Span{}, query.Term{}, false
		}
		return span, query.Term{Fragment: fragment}, true
	}
	term, ok := query.Parse(query.Normalize(span.Term(text)))
	if !ok {
		return query.Span{}, query.Term{}, false
	}
	return span, term, true
}
