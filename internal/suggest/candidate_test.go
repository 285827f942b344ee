package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/tagdeck/cli/internal/api"
)

func TestHighlight(t *testing.T) {
	before, match, after := Highlight("t=hotdog", "dog")
	assert.Equal(t, "t=hot", before)
	assert.Equal(t, "dog", match)
	assert.Equal(t, "", after)

	before, match, after = Highlight("Dog", "dog")
	assert.Equal(t, "Dog", before)
	assert.Empty(t, match)
	assert.Empty(t, after)

	before, match, _ = Highlight("dog", "")
	assert.Equal(t, "dog", before)
	assert.Empty(t, match)
}

func TestNewCandidateCarriesCount(t *testing.T) {
	c := NewCandidate(api.Suggestion{Tag: "catnip", Count: 7}, "cat")
	assert.Equal(t, 7, c.Count)
	assert.True(t, c.Highlighted())
	assert.Equal(t, "catnip", c.Before+c.Match+c.After)
}
