package suggest

import (
	"strings"

	"github.com/gravitrone/tagdeck/cli/internal/api"
)

// Candidate is a suggested tag split around the matched fragment.
type Candidate struct {
	Tag    string
	Count  int
	Before string
	Match  string
	After  string
}

// NewCandidate wraps a suggestion with highlight metadata for fragment.
func NewCandidate(s api.Suggestion, fragment string) Candidate {
	before, match, after := Highlight(s.Tag, fragment)
	return Candidate{
		Tag:    s.Tag,
		Count:  s.Count,
		Before: before,
		Match:  match,
		After:  after,
	}
}

// Highlighted reports whether the fragment was found in the tag.
func (c Candidate) Highlighted() bool {
	return c.Match != ""
}

// Highlight splits display at the first case-sensitive occurrence of fragment.
// Without a match the whole display is returned as before.
func Highlight(display, fragment string) (before, match, after string) {
	if fragment == "" {
		return display, "", ""
	}
	i := strings.Index(display, fragment)
	if i < 0 {
		return display, "", ""
	}
	return display[:i], display[i : i+len(fragment)], display[i+len(fragment):]
}
