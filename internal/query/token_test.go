package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidToken(t *testing.T) {
	cases := map[string]bool{
		"t~foo":  true,
		"T=bar":  true,
		"t=":     false,
		"x=foo":  false,
		"-t~abc": true,
		"-T=a":   true,
		"t~a b":  false,
		"t":      false,
		"-":      false,
		"":       false,
		"--t=a":  false,
		"t==a":   true,
	}
	for term, want := range cases {
		assert.Equal(t, want, IsValidToken(term), "term %q", term)
	}
}

func TestParseKeepsOperatorAndNegation(t *testing.T) {
	term, ok := Parse("-t=cat")
	require.True(t, ok)
	assert.True(t, term.Negated)
	assert.True(t, term.Exact)
	assert.Equal(t, "-t=", term.Operator)
	assert.Equal(t, "cat", term.Fragment)
	assert.Equal(t, "-t=cat", term.String())

	term, ok = Parse("T~dog")
	require.True(t, ok)
	assert.False(t, term.Negated)
	assert.False(t, term.Exact)
	assert.Equal(t, "dog", term.Fragment)
}

func TestNormalizePrefixesBareFragment(t *testing.T) {
	assert.Equal(t, "t~do", Normalize("do"))
	assert.Equal(t, "t=do", Normalize("t=do"))
	assert.Equal(t, "-T~do", Normalize("-T~do"))
	assert.Equal(t, "t~", Normalize(""))
	assert.False(t, IsValidToken(Normalize("")))
}

func TestStripOperator(t *testing.T) {
	assert.Equal(t, "do", StripOperator("t~do"))
	assert.Equal(t, "do", StripOperator("-T=do"))
	assert.Equal(t, "do", StripOperator("do"))
}

func TestLocateStrict(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		cursor int
		want   Span
		found  bool
	}{
		{"operator at start", "t~do", 4, Span{0, 4}, true},
		{"operator after words", "foo t~ba", 8, Span{4, 8}, true},
		{"negated operator", "a -t=x", 6, Span{2, 6}, true},
		{"cursor mid token", "t~dog", 3, Span{0, 3}, true},
		{"text after cursor ignored", "foo t~ba bar", 8, Span{4, 8}, true},
		{"bare fragment alone", "ca", 2, Span{0, 2}, true},
		{"empty text", "", 0, Span{0, 0}, true},
		{"bare word after space", "foo ba", 6, Span{}, false},
		{"cursor right after space", "foo ", 4, Span{}, false},
		{"cursor out of range", "foo", 9, Span{}, false},
		{"marker only", "x t=", 4, Span{2, 4}, true},
		{"uppercase marker", "x T~Do", 6, Span{2, 6}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			span, ok := Locate(tc.text, tc.cursor, Strict)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, span)
		})
	}
}

func TestLocateLenientAcceptsBareWords(t *testing.T) {
	span, ok := Locate("foo ba", 6, Lenient)
	require.True(t, ok)
	assert.Equal(t, Span{4, 6}, span)
	assert.Equal(t, "ba", span.Term("foo ba"))

	_, ok = Locate("foo ", 4, Lenient)
	assert.False(t, ok)
}

func TestLocateWholeCoversInput(t *testing.T) {
	span, ok := Locate("red pan", 3, Whole)
	require.True(t, ok)
	assert.Equal(t, Span{0, 7}, span)
}

func TestLocateIsDeterministic(t *testing.T) {
	text := "foo -t~bar baz t=q"
	for cursor := 0; cursor <= len([]rune(text)); cursor++ {
		a, okA := Locate(text, cursor, Strict)
		b, okB := Locate(text, cursor, Strict)
		assert.Equal(t, okA, okB)
		assert.Equal(t, a, b)
	}
}

func TestLocateSpanContainsCursorWhenMarkerPrecedes(t *testing.T) {
	text := "alpha t~beta -T=gamma delta"
	runes := []rune(text)
	for cursor := 0; cursor <= len(runes); cursor++ {
		span, ok := Locate(text, cursor, Strict)
		if !ok {
			continue
		}
		assert.True(t, span.Contains(cursor), "cursor %d span %+v", cursor, span)
		term := span.Term(text)
		assert.False(t, strings.ContainsAny(term, " \t"), "term %q", term)
	}

	span, ok := Locate(text, 10, Strict)
	require.True(t, ok)
	assert.Equal(t, "t~be", span.Term(text))
}

func TestLocateCountsRunes(t *testing.T) {
	text := "猫 t~ね"
	span, ok := Locate(text, 5, Strict)
	require.True(t, ok)
	assert.Equal(t, Span{2, 5}, span)
	assert.Equal(t, "t~ね", span.Term(text))
}
