package admin

import (
	"context"
	"fmt"
	"sync"
)

// Accessor is the data source behind a managed collection.
type Accessor[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, id uint, draft T) (T, error)
	Delete(ctx context.Context, id uint) error
}

// Outcome is the in-page feedback for one operation.
type Outcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func success(msg string) Outcome { return Outcome{OK: true, Message: msg} }

func failure(msg string, err error) Outcome {
	return Outcome{Message: fmt.Sprintf("%s: %v", msg, err), Err: err}
}

// Collection is the generic list/create/edit/delete state for one entity. After every successful
// mutation the whole list is fetched again. On failure the list is unchanged and the draft kept.
type Collection[T any] struct {
	schema   Schema
	accessor Accessor[T]

	mu     sync.Mutex
	items  []T
	draft  *T
	loaded bool
}

func NewCollection[T any](schema Schema, accessor Accessor[T]) *Collection[T] {
	return &Collection[T]{schema: schema, accessor: accessor, items: []T{}}
}

func (c *Collection[T]) Schema() Schema { return c.schema }

// Load fetches the full collection.
func (c *Collection[T]) Load(ctx context.Context) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.refetch(ctx); err != nil {
		return failure("Failed to load "+c.schema.Title, err)
	}
	return success(fmt.Sprintf("%s loaded", c.schema.Title))
}

// Save creates the draft when id is 0 and updates the row otherwise.
func (c *Collection[T]) Save(ctx context.Context, id uint, draft T) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	verb := "updated"
	if id == 0 {
		verb = "created"
		_, err = c.accessor.Create(ctx, draft)
	} else {
		_, err = c.accessor.Update(ctx, id, draft)
	}
	if err != nil {
		d := draft
		c.draft = &d
		return failure("Failed to save "+c.schema.Name, err)
	}
	c.draft = nil
	return c.afterMutation(ctx, verb)
}

func (c *Collection[T]) Remove(ctx context.Context, id uint) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.accessor.Delete(ctx, id); err != nil {
		return failure("Failed to delete from "+c.schema.Name, err)
	}
	return c.afterMutation(ctx, "deleted")
}

func (c *Collection[T]) afterMutation(ctx context.Context, verb string) Outcome {
	msg := fmt.Sprintf("%s %s", c.schema.Title, verb)
	if err := c.refetch(ctx); err != nil {
		return Outcome{OK: true, Message: msg + ", but the list could not be refreshed", Err: err}
	}
	return success(msg)
}

func (c *Collection[T]) refetch(ctx context.Context) error {
	items, err := c.accessor.List(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.loaded = true
	return nil
}

// Items returns a copy of the last fetched list.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Draft returns the draft kept from the last failed save.
func (c *Collection[T]) Draft() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		var zero T
		return zero, false
	}
	return *c.draft, true
}

// ClearDraft drops a kept draft, as when the form is closed.
func (c *Collection[T]) ClearDraft() {
	c.mu.Lock()
	c.draft = nil
	c.mu.Unlock()
}
