package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHintIncludesKeyAndDesc(t *testing.T) {
	out := Hint("enter", "add")
	assert.Contains(t, out, "add")
	assert.Contains(t, out, "enter")
}

func TestStatusBarRendersBadgeAndHints(t *testing.T) {
	out := StatusBar("3 selected", []string{Hint("q", "quit")}, 0)
	assert.Contains(t, out, "3 selected")
	assert.Contains(t, out, "quit")
}

func TestStatusBarWithoutBadge(t *testing.T) {
	out := StatusBar("", []string{Hint("q", "quit")}, 80)
	assert.NotContains(t, out, "selected")
	assert.Contains(t, out, "quit")
	assert.Empty(t, StatusBar("", nil, 80))
}

func TestWrapSegmentsWrapsWhenNarrow(t *testing.T) {
	segments := []string{"123456", "abcdef", "ghijkl"}
	rows := wrapSegments(segments, 10)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 10)
	}
}
