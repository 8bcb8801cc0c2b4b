package content

import (
	"context"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewContentRepository(dbtest.Open(t, &EditableContent{})))
}

func TestLookupFallsBackToDefault(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	got := s.Lookup(ctx, "about_title", "ჩვენს შესახებ")
	assert.Equal(t, ValueResponse{Key: "about_title", Value: "ჩვენს შესახებ"}, got)

	_, err := s.Upsert(ctx, UpsertContentRequest{Key: "about_title", Value: ""})
	require.NoError(t, err)
	got = s.Lookup(ctx, "about_title", "fallback")
	assert.Equal(t, "fallback", got.Value)
	assert.True(t, got.Exists)

	_, err = s.Upsert(ctx, UpsertContentRequest{Key: "about_title", Value: "About Lelo"})
	require.NoError(t, err)
	v, err := s.Value(ctx, "about_title", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "About Lelo", v)
}

func TestUpsertKeepsTypeAndSection(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	first, err := s.Upsert(ctx, UpsertContentRequest{Key: "about_description", Value: "v1", Type: TypeTextarea, Section: "about"})
	require.NoError(t, err)

	second, err := s.Upsert(ctx, UpsertContentRequest{Key: "about_description", Value: "v2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Value)
	assert.Equal(t, TypeTextarea, second.Type)
	assert.Equal(t, "about", second.Section)
	assert.Len(t, s.List(ctx, ""), 1)
}

func TestUpsertDefaults(t *testing.T) {
	s := setupService(t)
	ec, err := s.Upsert(context.Background(), UpsertContentRequest{Key: "founded_year", Value: "1969"})
	require.NoError(t, err)
	assert.Equal(t, TypeText, ec.Type)
	assert.Equal(t, DefaultSection, ec.Section)
}

func TestBulkUpsertLastWriteWins(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	n, err := s.BulkUpsert(ctx, []UpsertContentRequest{
		{Key: "history_title", Value: "a", Section: "about"},
		{Key: "trophies", Value: "12", Type: TypeNumber, Section: "stats"},
		{Key: "history_title", Value: "b", Section: "about"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	about := s.List(ctx, "about")
	require.Len(t, about, 1)
	assert.Equal(t, "b", about[0].Value)
	assert.Len(t, s.List(ctx, "stats"), 1)
}

func TestBulkUpsertRejectsBadKeyAtomically(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.BulkUpsert(ctx, []UpsertContentRequest{
		{Key: "ok_key", Value: "x"},
		{Key: "Bad Key", Value: "y"},
	})
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Empty(t, s.List(ctx, ""))
}

func TestInsertMissingLeavesExisting(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, UpsertContentRequest{Key: "about_title", Value: "edited by admin"})
	require.NoError(t, err)

	n, err := s.InsertMissing(ctx, []EditableContent{
		{Key: "about_title", Value: "seed"},
		{Key: "history_title", Value: "seed history", Section: "about"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.Equal(t, "edited by admin", s.Lookup(ctx, "about_title", "").Value)
	assert.Equal(t, "seed history", s.Lookup(ctx, "history_title", "").Value)
}

func TestDeleteByKey(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.Upsert(ctx, UpsertContentRequest{Key: "tmp", Value: "x"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteByKey(ctx, "tmp"))
	assert.ErrorIs(t, s.DeleteByKey(ctx, "tmp"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteByKey(ctx, ""), ErrInvalidKey)

	// the key can be reused after a delete
	_, err = s.Upsert(ctx, UpsertContentRequest{Key: "tmp", Value: "y"})
	require.NoError(t, err)
}

func TestValidKey(t *testing.T) {
	for _, k := range []string{"about_title", "a", "home.hero-1"} {
		assert.True(t, ValidKey(k), k)
	}
	for _, k := range []string{"", "About", "_x", "a b", "a/b"} {
		assert.False(t, ValidKey(k), k)
	}
}

func TestListFailsSoft(t *testing.T) {
	db, mock := dbtest.Mock(t)
	s := NewService(NewContentRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "editable_content"`).WillReturnError(errors.New("down"))

	got := s.List(context.Background(), "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
