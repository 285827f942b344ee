package tagedit

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gravitrone/tagdeck/cli/internal/api"
)

var (
	// ErrPending is returned while the same control still has a request in flight.
	ErrPending = errors.New("request already pending")
	// ErrDeclined is returned when the user does not confirm a removal.
	ErrDeclined = errors.New("removal declined")
	// ErrEmptyTag is returned for a blank tag.
	ErrEmptyTag = errors.New("tag is empty")
	// ErrNoItems is returned when no item ids were given.
	ErrNoItems = errors.New("no items selected")
)

// Store is the remote tag store.
type Store interface {
	ListTags(ids []string) ([]api.TagRecord, error)
	AddTag(tag string, ids []string) ([]api.TagRecord, error)
	RemoveTag(tag, cls string, ids []string) ([]api.TagRecord, error)
}

// Control names a UI control that can start a request. Add and remove are each
// guarded by their own pending flag; a newer list supersedes an older one.
type Control int

const (
	ControlList Control = iota
	ControlAdd
	ControlRemove
)

func (c Control) String() string {
	switch c {
	case ControlAdd:
		return api.ActionAddTag
	case ControlRemove:
		return api.ActionRmTag
	default:
		return api.ActionGetTags
	}
}

// Confirmer asks the user to confirm a removal prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Answer is a Confirmer with a fixed answer, for callers that already asked.
type Answer bool

// Confirm returns the fixed answer.
func (a Answer) Confirm(string) bool { return bool(a) }

// RemovalPrompt is the confirmation text shown before removing a tag.
func RemovalPrompt(tag, cls string) string {
	return fmt.Sprintf("Tag: %s\nClass: %s\n\nRemove?", tag, cls)
}

// Result is the outcome of one request.
type Result struct {
	Control Control
	IDs     []string
	Tag     string
	Cls     string
	Records []api.TagRecord
	Err     error

	seq uint64
}

// Request performs the exchange with the store. It may run off the event loop;
// the Result must be handed back to Complete on the loop.
type Request func() Result

// Client issues tag store requests, at most one in flight per control.
type Client struct {
	store   Store
	logger  *slog.Logger
	pending map[Control]uint64
	seq     uint64
	list    uint64
}

// NewClient creates a mutation client over store.
func NewClient(store Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		store:   store,
		logger:  logger,
		pending: make(map[Control]uint64),
	}
}

// Pending reports whether ctrl has a request outstanding.
func (c *Client) Pending(ctrl Control) bool {
	_, ok := c.pending[ctrl]
	return ok
}

// List fetches the current tag aggregate for ids. It never reports ErrPending;
// any earlier list still in flight becomes stale.
func (c *Client) List(ids []string) (Request, error) {
	if len(ids) == 0 {
		return nil, ErrNoItems
	}
	c.seq++
	c.list = c.seq
	seq := c.seq
	ids = cloneIDs(ids)
	return func() Result {
		records, err := c.store.ListTags(ids)
		return Result{Control: ControlList, IDs: ids, Records: records, Err: err, seq: seq}
	}, nil
}

// Add tags every item in ids with tag.
func (c *Client) Add(tag string, ids []string) (Request, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, ErrEmptyTag
	}
	if len(ids) == 0 {
		return nil, ErrNoItems
	}
	seq, err := c.begin(ControlAdd)
	if err != nil {
		return nil, err
	}
	ids = cloneIDs(ids)
	return func() Result {
		records, err := c.store.AddTag(tag, ids)
		return Result{Control: ControlAdd, IDs: ids, Tag: tag, Records: records, Err: err, seq: seq}
	}, nil
}

// Remove removes tag/cls from every item in ids once confirm agrees. Declining
// returns ErrDeclined and sends nothing.
func (c *Client) Remove(tag, cls string, ids []string, confirm Confirmer) (Request, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, ErrEmptyTag
	}
	if len(ids) == 0 {
		return nil, ErrNoItems
	}
	if c.Pending(ControlRemove) {
		return nil, ErrPending
	}
	if confirm == nil || !confirm.Confirm(RemovalPrompt(tag, cls)) {
		return nil, ErrDeclined
	}
	seq, err := c.begin(ControlRemove)
	if err != nil {
		return nil, err
	}
	ids = cloneIDs(ids)
	c.logger.Info("remove tag", "tag", tag, "cls", cls, "items", len(ids))
	return func() Result {
		records, err := c.store.RemoveTag(tag, cls, ids)
		return Result{Control: ControlRemove, IDs: ids, Tag: tag, Cls: cls, Records: records, Err: err, seq: seq}
	}, nil
}

// Complete clears the pending flag of the control that produced res. A result
// from an older request of the same control leaves the flag alone.
func (c *Client) Complete(res Result) {
	if seq, ok := c.pending[res.Control]; ok && seq == res.seq {
		delete(c.pending, res.Control)
	}
	if res.Err != nil {
		c.logger.Warn("tag request failed", "action", res.Control.String(), "err", res.Err)
	}
}

// Current reports whether res is still wanted. Only the latest list is; add and
// remove results always are.
func (c *Client) Current(res Result) bool {
	return res.Control != ControlList || res.seq == c.list
}

// Do runs a request synchronously and completes it.
func (c *Client) Do(req Request) Result {
	res := req()
	c.Complete(res)
	return res
}

func (c *Client) begin(ctrl Control) (uint64, error) {
	if c.Pending(ctrl) {
		return 0, ErrPending
	}
	c.seq++
	c.pending[ctrl] = c.seq
	return c.seq, nil
}

func cloneIDs(ids []string) []string {
	return append([]string(nil), ids...)
}
