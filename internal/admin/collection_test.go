package admin

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uint
	Title string
}

// memAccessor keeps rows in memory and counts list calls.
type memAccessor struct {
	rows      map[uint]row
	next      uint
	lists     int
	failWrite error
	failList  error
}

func newMemAccessor() *memAccessor {
	return &memAccessor{rows: map[uint]row{}, next: 1}
}

func (m *memAccessor) List(context.Context) ([]row, error) {
	m.lists++
	if m.failList != nil {
		return nil, m.failList
	}
	out := make([]row, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memAccessor) Create(_ context.Context, d row) (row, error) {
	if m.failWrite != nil {
		return row{}, m.failWrite
	}
	d.ID = m.next
	m.next++
	m.rows[d.ID] = d
	return d, nil
}

func (m *memAccessor) Update(_ context.Context, id uint, d row) (row, error) {
	if m.failWrite != nil {
		return row{}, m.failWrite
	}
	if _, ok := m.rows[id]; !ok {
		return row{}, errors.New("not found")
	}
	d.ID = id
	m.rows[id] = d
	return d, nil
}

func (m *memAccessor) Delete(_ context.Context, id uint) error {
	if m.failWrite != nil {
		return m.failWrite
	}
	if _, ok := m.rows[id]; !ok {
		return errors.New("not found")
	}
	delete(m.rows, id)
	return nil
}

func TestSaveCreatesThenRefetches(t *testing.T) {
	acc := newMemAccessor()
	c := NewCollection[row](NewsSchema, acc)
	ctx := context.Background()

	out := c.Load(ctx)
	require.True(t, out.OK)
	assert.Empty(t, c.Items())
	assert.True(t, c.Loaded())

	out = c.Save(ctx, 0, row{Title: "Test"})
	require.True(t, out.OK, out.Message)
	assert.Equal(t, "News created", out.Message)
	assert.Equal(t, 2, acc.lists)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)

	out = c.Save(ctx, 1, row{Title: "Edited"})
	require.True(t, out.OK)
	assert.Equal(t, "Edited", c.Items()[0].Title)
	assert.Equal(t, 3, acc.lists)

	out = c.Remove(ctx, 1)
	require.True(t, out.OK)
	assert.Equal(t, "News deleted", out.Message)
	assert.Empty(t, c.Items())
}

func TestFailedSaveKeepsDraftAndList(t *testing.T) {
	acc := newMemAccessor()
	c := NewCollection[row](MatchSchema, acc)
	ctx := context.Background()

	require.True(t, c.Save(ctx, 0, row{Title: "kept"}).OK)
	before := c.Items()

	acc.failWrite = errors.New("permission denied")
	out := c.Save(ctx, 0, row{Title: "draft"})
	assert.False(t, out.OK)
	assert.ErrorIs(t, out.Err, acc.failWrite)
	assert.Contains(t, out.Message, "permission denied")

	d, ok := c.Draft()
	require.True(t, ok)
	assert.Equal(t, "draft", d.Title)
	assert.Equal(t, before, c.Items())

	out = c.Remove(ctx, before[0].ID)
	assert.False(t, out.OK)
	assert.Equal(t, before, c.Items())

	acc.failWrite = nil
	require.True(t, c.Save(ctx, 0, d).OK)
	_, ok = c.Draft()
	assert.False(t, ok)
	assert.Len(t, c.Items(), 2)
}

func TestRefetchFailureAfterMutation(t *testing.T) {
	acc := newMemAccessor()
	c := NewCollection[row](StaffSchema, acc)
	ctx := context.Background()

	acc.failList = errors.New("timeout")
	out := c.Save(ctx, 0, row{Title: "x"})
	assert.True(t, out.OK)
	assert.Error(t, out.Err)
	assert.Len(t, acc.rows, 1)

	out = c.Load(ctx)
	assert.False(t, out.OK)
	assert.False(t, c.Loaded())
}

func TestRemoveMissing(t *testing.T) {
	c := NewCollection[row](GallerySchema, newMemAccessor())
	out := c.Remove(context.Background(), 99)
	assert.False(t, out.OK)
	assert.Error(t, out.Err)
}
