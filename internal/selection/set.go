package selection

import "fmt"

// Policy decides whether a long interaction may toggle id.
type Policy func(s *Set, id string) bool

// AllowAlways permits every long interaction.
func AllowAlways(*Set, string) bool { return true }

// WhileFewerThan permits long interactions only while fewer than n items are selected.
func WhileFewerThan(n int) Policy {
	return func(s *Set, _ string) bool {
		return s.Count() < n
	}
}

// Set tracks which gallery items are selected.
type Set struct {
	order    []string
	known    map[string]bool
	selected map[string]bool
	policy   Policy
	onChange func(count int)
	visible  bool
}

// New creates an empty selection over the given gallery items.
func New(ids []string) *Set {
	s := &Set{
		known:    make(map[string]bool, len(ids)),
		selected: make(map[string]bool),
		policy:   AllowAlways,
	}
	for _, id := range ids {
		if id == "" || s.known[id] {
			continue
		}
		s.known[id] = true
		s.order = append(s.order, id)
	}
	return s
}

// SetPolicy replaces the long interaction policy.
func (s *Set) SetPolicy(p Policy) {
	if p == nil {
		p = AllowAlways
	}
	s.policy = p
}

// OnChange registers a hook run after every transition with the new count.
func (s *Set) OnChange(fn func(count int)) {
	s.onChange = fn
}

// Items returns every gallery item in display order.
func (s *Set) Items() []string {
	return append([]string(nil), s.order...)
}

// Click is the short interaction. With an empty selection it does nothing and
// returns false so the caller can treat it as navigation.
func (s *Set) Click(id string) bool {
	if len(s.selected) == 0 || !s.known[id] {
		return false
	}
	s.invert(id)
	return true
}

// LongPress toggles id if the policy allows it.
func (s *Set) LongPress(id string) bool {
	if !s.known[id] || !s.policy(s, id) {
		return false
	}
	s.invert(id)
	return true
}

// Toggle inverts id regardless of the current selection.
func (s *Set) Toggle(id string) bool {
	if !s.known[id] {
		return false
	}
	s.invert(id)
	return true
}

// SelectAll selects every item in one pass.
func (s *Set) SelectAll() {
	s.selected = make(map[string]bool, len(s.order))
	for _, id := range s.order {
		s.selected[id] = true
	}
	s.changed()
}

// SelectNone clears the selection in one pass.
func (s *Set) SelectNone() {
	s.selected = make(map[string]bool)
	s.changed()
}

// IsSelected reports whether id is selected.
func (s *Set) IsSelected(id string) bool {
	return s.selected[id]
}

// Count returns the number of selected items.
func (s *Set) Count() int {
	return len(s.selected)
}

// IDs returns the selected ids in gallery order.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.selected))
	for _, id := range s.order {
		if s.selected[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// StatusVisible reports whether the selection status bar is shown.
func (s *Set) StatusVisible() bool {
	return s.visible
}

// StatusText is the status bar message.
func (s *Set) StatusText() string {
	return fmt.Sprintf("%d selected", len(s.selected))
}

func (s *Set) invert(id string) {
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
	s.changed()
}

func (s *Set) changed() {
	s.visible = len(s.selected) > 0
	if s.onChange != nil {
		s.onChange(len(s.selected))
	}
}
