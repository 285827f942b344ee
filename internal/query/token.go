package query

import "unicode"

// Grammar selects how the active token under the cursor is found.
type Grammar int

const (
	// Strict only recognizes a word that starts with an operator marker, or a
	// bare fragment when nothing but that fragment precedes the cursor.
	Strict Grammar = iota
	// Lenient treats any whitespace-delimited word ending at the cursor as a token.
	Lenient
	// Whole treats the entire input as one fragment with no operator.
	Whole
)

// String returns the config name of the grammar.
func (g Grammar) String() string {
	switch g {
	case Lenient:
		return "lenient"
	case Whole:
		return "whole"
	default:
		return "strict"
	}
}

// DefaultOperator is prepended to bare fragments before validation.
const DefaultOperator = "t~"

// Span is a half-open rune range [Start, End) of the query text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the cursor lies within or on the edges of the span.
func (s Span) Contains(cursor int) bool {
	return s.Start <= cursor && cursor <= s.End
}

// Term returns the text covered by the span.
func (s Span) Term(text string) string {
	runes := []rune(text)
	start, end := clampSpan(s, len(runes))
	return string(runes[start:end])
}

// Term is a parsed token: operator marker plus the fragment being typed.
type Term struct {
	Negated  bool
	Exact    bool
	Operator string
	Fragment string
}

// String rebuilds the token text.
func (t Term) String() string {
	return t.Operator + t.Fragment
}

// Locate finds the token that ends at cursor. Cursor is a rune offset.
// The result depends only on its arguments.
func Locate(text string, cursor int, grammar Grammar) (Span, bool) {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		return Span{}, false
	}
	if grammar == Whole {
		return Span{Start: 0, End: len(runes)}, true
	}

	start := cursor
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	word := runes[start:cursor]

	if markerLen(word) > 0 {
		return Span{Start: start, End: cursor}, true
	}
	if start == 0 {
		return Span{Start: 0, End: cursor}, true
	}
	if grammar == Lenient && len(word) > 0 {
		return Span{Start: start, End: cursor}, true
	}
	return Span{}, false
}

// HasOperator reports whether term begins with an operator marker.
func HasOperator(term string) bool {
	return markerLen([]rune(term)) > 0
}

// Normalize prefixes a bare fragment with the default fuzzy operator.
func Normalize(term string) string {
	if HasOperator(term) {
		return term
	}
	return DefaultOperator + term
}

// IsValidToken reports whether term is an optional "-", then t or T, then = or ~,
// then one or more non-whitespace runes.
func IsValidToken(term string) bool {
	_, ok := Parse(term)
	return ok
}

// Parse splits a valid token into operator and fragment. The negation flag and
// exact/fuzzy operator are carried as-is for the caller to forward.
func Parse(term string) (Term, bool) {
	runes := []rune(term)
	n := markerLen(runes)
	if n == 0 || n == len(runes) {
		return Term{}, false
	}
	for _, r := range runes[n:] {
		if unicode.IsSpace(r) {
			return Term{}, false
		}
	}
	return Term{
		Negated:  runes[0] == '-',
		Exact:    runes[n-1] == '=',
		Operator: string(runes[:n]),
		Fragment: string(runes[n:]),
	}, true
}

// StripOperator removes a leading operator marker if present.
func StripOperator(term string) string {
	runes := []rune(term)
	return string(runes[markerLen(runes):])
}

func markerLen(runes []rune) int {
	i := 0
	if i < len(runes) && runes[i] == '-' {
		i++
	}
	if i >= len(runes) || (runes[i] != 't' && runes[i] != 'T') {
		return 0
	}
	i++
	if i >= len(runes) || (runes[i] != '=' && runes[i] != '~') {
		return 0
	}
	return i + 1
}

func clampSpan(s Span, n int) (int, int) {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}
