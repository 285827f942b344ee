package tagedit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gravitrone/tagdeck/cli/internal/api"
)

const (
	titleLoading  = "loading..."
	titleAdding   = "Adding tag..."
	titleRemoving = "Removing tag..."
)

// Removal is a row waiting for the user to confirm its removal.
type Removal struct {
	Tag string
	Cls string
}

// Prompt is the confirmation text for this removal.
func (r Removal) Prompt() string {
	return RemovalPrompt(r.Tag, r.Cls)
}

// Editor is the bulk tag editor popup state for the selected items.
type Editor struct {
	client *Client

	open    bool
	ids     []string
	title   string
	message string
	rows    []api.TagRecord
	newTag  string
	confirm *Removal
}

// NewEditor creates a closed editor.
func NewEditor(client *Client) *Editor {
	return &Editor{client: client}
}

// Open shows the editor for ids and requests their tags.
func (e *Editor) Open(ids []string) (Request, error) {
	if len(ids) == 0 {
		return nil, ErrNoItems
	}
	e.open = true
	e.ids = cloneIDs(ids)
	e.rows = nil
	e.message = ""
	e.confirm = nil
	e.title = titleLoading
	req, err := e.client.List(e.ids)
	if err != nil {
		e.title = err.Error()
		return nil, err
	}
	return req, nil
}

// Close hides the editor. Requests still in flight complete normally.
func (e *Editor) Close() {
	e.open = false
	e.confirm = nil
}

// IsOpen reports whether the popup is shown.
func (e *Editor) IsOpen() bool { return e.open }

// IDs returns the items the editor works on.
func (e *Editor) IDs() []string { return cloneIDs(e.ids) }

// Title is the popup heading.
func (e *Editor) Title() string { return e.title }

// Message carries failure details, if any.
func (e *Editor) Message() string { return e.message }

// Rows returns the rendered tag records.
func (e *Editor) Rows() []api.TagRecord { return e.rows }

// NewTag is the value of the new-tag input.
func (e *Editor) NewTag() string { return e.newTag }

// SetNewTag updates the new-tag input.
func (e *Editor) SetNewTag(v string) { e.newTag = v }

// AddPending reports whether the add control is disabled.
func (e *Editor) AddPending() bool { return e.client.Pending(ControlAdd) }

// RemovePending reports whether the remove controls are disabled.
func (e *Editor) RemovePending() bool { return e.client.Pending(ControlRemove) }

// SubmitAdd adds the new-tag input value to every item.
func (e *Editor) SubmitAdd() (Request, error) {
	req, err := e.client.Add(e.newTag, e.ids)
	if err != nil {
		return nil, err
	}
	e.title = titleAdding
	e.message = ""
	return req, nil
}

// RequestRemove asks for confirmation to remove the row at index.
func (e *Editor) RequestRemove(index int) (Removal, bool) {
	if index < 0 || index >= len(e.rows) || e.RemovePending() {
		return Removal{}, false
	}
	row := e.rows[index]
	e.confirm = &Removal{Tag: row.Tag, Cls: row.Cls}
	return *e.confirm, true
}

// Confirming returns the removal awaiting an answer.
func (e *Editor) Confirming() (Removal, bool) {
	if e.confirm == nil {
		return Removal{}, false
	}
	return *e.confirm, true
}

// ResolveRemove answers the pending confirmation. Declining sends nothing and
// leaves the rows untouched.
func (e *Editor) ResolveRemove(confirmed bool) (Request, error) {
	if e.confirm == nil {
		return nil, ErrDeclined
	}
	r := *e.confirm
	e.confirm = nil
	req, err := e.client.Remove(r.Tag, r.Cls, e.ids, Answer(confirmed))
	if err != nil {
		return nil, err
	}
	e.title = titleRemoving
	e.message = ""
	return req, nil
}

// Apply renders a finished request. Success replaces the rows wholesale.
func (e *Editor) Apply(res Result) {
	e.client.Complete(res)
	if !e.client.Current(res) || !slices.Equal(res.IDs, e.ids) {
		return
	}
	if res.Err != nil {
		e.title = failureTitle(res.Err)
		e.message = failureDetail(res.Err)
		return
	}
	e.rows = res.Records
	e.title = e.defaultTitle()
	e.message = ""
	switch res.Control {
	case ControlAdd:
		e.newTag = ""
	case ControlRemove:
		e.newTag = res.Tag
	}
}

func (e *Editor) defaultTitle() string {
	return fmt.Sprintf("Tags for %d items", len(e.ids))
}

func failureTitle(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return "failed: " + err.Error()
}

func failureDetail(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body
	}
	return ""
}
