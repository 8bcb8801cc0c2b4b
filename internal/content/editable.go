package content

import (
	"context"
	"errors"
	"sync"

	"github.com/DhavalSuthar-24/lelo/internal/common"
)

// ValueStore reads and writes committed values by key.
type ValueStore interface {
	Value(ctx context.Context, key, def string) (string, error)
	SetValue(ctx context.Context, key, value string) error
}

type EditState int

const (
	Display EditState = iota
	Editing
	Saving
)

func (s EditState) String() string {
	switch s {
	case Display:
		return "display"
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	}
	return "unknown"
}

var (
	ErrNotEditable = errors.New("only administrators can edit content")
	ErrNotEditing  = errors.New("content is not being edited")
	ErrBusy        = errors.New("a save is already in progress")
)

// EditableText is an inline editable value bound to one key. The committed value only changes
// after a successful save. A failed save keeps the draft and returns to Editing.
type EditableText struct {
	store ValueStore
	key   string
	def   string

	mu    sync.Mutex
	state EditState
	value string
	draft string
}

func NewEditableText(store ValueStore, key, def string) *EditableText {
	return &EditableText{store: store, key: key, def: def, value: def}
}

func (e *EditableText) Key() string { return e.key }

// Load fetches the committed value. On error the default is shown and the error returned.
func (e *EditableText) Load(ctx context.Context) (string, error) {
	e.mu.Lock()
	if e.state == Saving {
		e.mu.Unlock()
		return "", ErrBusy
	}
	e.mu.Unlock()

	v, err := e.store.Value(ctx, e.key, e.def)
	if err != nil || v == "" {
		v = e.def
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
	return v, err
}

// Edit enters Editing with the committed value as the draft.
func (e *EditableText) Edit(id common.Identity) error {
	if !id.IsAdmin() {
		return ErrNotEditable
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case Saving:
		return ErrBusy
	case Display:
		e.draft = e.value
		e.state = Editing
	}
	return nil
}

func (e *EditableText) SetDraft(v string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case Editing:
		e.draft = v
		return nil
	case Saving:
		return ErrBusy
	}
	return ErrNotEditing
}

// Cancel discards the draft.
func (e *EditableText) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.state {
	case Editing:
		e.draft = ""
		e.state = Display
		return nil
	case Saving:
		return ErrBusy
	}
	return ErrNotEditing
}

// Save writes the draft. The lock is not held while the store is called, so readers see Saving.
func (e *EditableText) Save(ctx context.Context) error {
	e.mu.Lock()
	switch e.state {
	case Saving:
		e.mu.Unlock()
		return ErrBusy
	case Display:
		e.mu.Unlock()
		return ErrNotEditing
	}
	e.state = Saving
	draft := e.draft
	e.mu.Unlock()

	err := e.store.SetValue(ctx, e.key, draft)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.state = Editing
		return err
	}
	e.value = draft
	e.draft = ""
	e.state = Display
	return nil
}

func (e *EditableText) State() EditState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Value is the committed value.
func (e *EditableText) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

func (e *EditableText) Draft() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}
