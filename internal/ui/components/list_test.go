package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListNewList(t *testing.T) {
	l := NewList(10)
	assert.Equal(t, 10, l.PageSize)
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 1, NewList(0).PageSize)
}

func TestListSetItemsResetsCursor(t *testing.T) {
	l := NewList(2)
	l.SetItems([]string{"a", "b", "c"})
	l.Down()
	l.Down()
	assert.Equal(t, 1, l.Offset)

	l.SetItems([]string{"x"})
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, 0, l.Offset)
	assert.Equal(t, 1, l.Len())
}

func TestListDownAndUpScroll(t *testing.T) {
	l := NewList(2)
	l.SetItems([]string{"a", "b", "c", "d"})

	l.Down()
	l.Down()
	l.Down()
	l.Down()
	assert.Equal(t, 3, l.Cursor)
	assert.Equal(t, 2, l.Offset)
	assert.Equal(t, []string{"c", "d"}, l.Visible())

	l.Up()
	l.Up()
	l.Up()
	l.Up()
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, 0, l.Offset)
}

func TestDropdownStartsWithNothingHighlighted(t *testing.T) {
	l := NewDropdown(5)
	l.SetItems([]string{"dog", "doge"})
	assert.Equal(t, -1, l.Selected())

	l.Down()
	assert.Equal(t, 0, l.Selected())
	l.Up()
	assert.Equal(t, -1, l.Selected())
	l.Up()
	assert.Equal(t, -1, l.Selected())
}

func TestListSetCursorScrollsIntoView(t *testing.T) {
	l := NewList(2)
	l.SetItems([]string{"a", "b", "c", "d"})
	l.SetCursor(3)
	assert.Equal(t, 3, l.Selected())
	assert.Equal(t, 2, l.Offset)
	l.SetCursor(0)
	assert.Equal(t, 0, l.Offset)
	l.SetCursor(9)
	assert.Equal(t, 0, l.Selected())
}

func TestListVisibleEmpty(t *testing.T) {
	l := NewList(3)
	assert.Nil(t, l.Visible())
	assert.Equal(t, 0, l.Selected())
}

func TestListSelectedOnEmptyDropdown(t *testing.T) {
	l := NewDropdown(3)
	assert.Equal(t, -1, l.Selected())
	l.Down()
	assert.Equal(t, -1, l.Selected())
}

func TestListRelToAbsAndIsSelected(t *testing.T) {
	l := NewList(2)
	l.SetItems([]string{"a", "b", "c"})
	l.Down()
	l.Down()
	assert.Equal(t, 2, l.RelToAbs(1))
	assert.True(t, l.IsSelected(2))
	assert.False(t, l.IsSelected(1))
}
