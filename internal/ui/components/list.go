package components

// List is a scrollable list with a cursor. With AllowNone the cursor may rest
// above the first item, meaning nothing is highlighted.
type List struct {
	Items     []string
	Cursor    int
	Offset    int
	PageSize  int
	AllowNone bool
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &List{PageSize: pageSize}
}

// NewDropdown creates a list whose cursor starts on no item.
func NewDropdown(pageSize int) *List {
	l := NewList(pageSize)
	l.AllowNone = true
	l.Cursor = -1
	return l
}

// SetItems replaces items and resets the cursor.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Offset = 0
	l.Cursor = 0
	if l.AllowNone {
		l.Cursor = -1
	}
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < len(l.Items)-1 {
		l.Cursor++
		if l.Cursor >= l.Offset+l.PageSize {
			l.Offset = l.Cursor - l.PageSize + 1
		}
	}
}

// Up moves the cursor up, onto no item when AllowNone is set.
func (l *List) Up() {
	floor := 0
	if l.AllowNone {
		floor = -1
	}
	if l.Cursor > floor {
		l.Cursor--
		if l.Cursor >= 0 && l.Cursor < l.Offset {
			l.Offset = l.Cursor
		}
	}
}

// SetCursor moves the cursor to idx and scrolls it into view.
func (l *List) SetCursor(idx int) {
	if idx < 0 || idx >= len(l.Items) {
		return
	}
	l.Cursor = idx
	if idx < l.Offset {
		l.Offset = idx
	}
	if idx >= l.Offset+l.PageSize {
		l.Offset = idx - l.PageSize + 1
	}
}

// Visible returns the currently visible items.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	end := l.Offset + l.PageSize
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.Offset:end]
}

// Selected returns the cursor index, or -1 when nothing is highlighted.
func (l *List) Selected() int {
	if l.Cursor >= len(l.Items) {
		return -1
	}
	return l.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return absIdx == l.Cursor
}

// RelToAbs converts a relative (visible) index to absolute.
func (l *List) RelToAbs(relIdx int) int {
	return l.Offset + relIdx
}
