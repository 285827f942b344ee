package api

// --- Suggestions ---

// SuggestMode selects which autocomplete index the server consults.
type SuggestMode string

const (
	// ModeSearch expects search-box fragments and returns search terms.
	ModeSearch SuggestMode = "search"
	// ModeAddTag returns plain tags for the add-tag input.
	ModeAddTag SuggestMode = "addtag"
)

// Suggestion is one autocomplete candidate from /ac.
type Suggestion struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// --- Tags ---

// Tag store actions accepted by /tags.
const (
	ActionGetTags = "gettags"
	ActionAddTag  = "addtag"
	ActionRmTag   = "rmtag"
)

// TagRecord is the aggregate of one tag (and class) across a set of items.
type TagRecord struct {
	Tag    string `json:"tag"`
	Cls    string `json:"cls,omitempty"`
	Count  int    `json:"count"`
	Search string `json:"search,omitempty"`
}

// TagsRequest is the body posted to /tags. Cls is only sent on removal.
type TagsRequest struct {
	Action string   `json:"action"`
	Tag    string   `json:"tag,omitempty"`
	Cls    *string  `json:"cls,omitempty"`
	IDs    []string `json:"ids"`
}
