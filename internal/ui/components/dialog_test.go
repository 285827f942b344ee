package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Remove tag", "Tag: dog\nClass: animal\n\nRemove?")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Remove tag")
	assert.Contains(t, clean, "Tag: dog")
	assert.Contains(t, clean, "Class: animal")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}

func TestConfirmDialogStripsEscapesFromMessage(t *testing.T) {
	out := ConfirmDialog("Remove tag", "Tag: \x1b[31mred\x1b[0m")
	assert.Contains(t, SanitizeText(out), "Tag: red")
}
