package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (*Service, *clockwork.FakeClock) {
	t.Helper()
	db := dbtest.Open(t, &NewsItem{})
	clock := clockwork.NewFakeClockAt(epoch)
	return NewService(NewNewsRepository(db), clock), clock
}

func createNews(t *testing.T, s *Service, title string, cat models.League) *NewsItem {
	t.Helper()
	item, err := s.Create(context.Background(), CreateNewsRequest{
		Title: title, Category: cat, Excerpt: "...", Content: "...", Author: "A",
	})
	require.NoError(t, err)
	return item
}

func TestCreateThenRecent(t *testing.T) {
	s, _ := setupService(t)
	ctx := context.Background()

	item := createNews(t, s, "Test", models.LeagueTopDivision)

	recent := s.Recent(ctx, 1)
	require.Len(t, recent, 1)
	assert.NotZero(t, recent[0].ID)
	assert.Equal(t, item.ID, recent[0].ID)
	assert.Equal(t, "Test", recent[0].Title)
	assert.Equal(t, epoch, recent[0].PublishedDate.UTC())
}

func TestCreateAppearsOnce(t *testing.T) {
	s, _ := setupService(t)
	ctx := context.Background()

	createNews(t, s, "one", models.LeagueTopDivision)
	created := createNews(t, s, "two", models.LeagueA)

	count := 0
	for _, it := range s.List(ctx, NewsFilter{}) {
		if it.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	s, clock := setupService(t)
	ctx := context.Background()

	oldest := createNews(t, s, "oldest", models.LeagueTopDivision)
	clock.Advance(time.Hour)
	middle := createNews(t, s, "middle", models.LeagueTopDivision)
	clock.Advance(time.Hour)
	newest := createNews(t, s, "newest", models.LeagueTopDivision)

	recent := s.Recent(ctx, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, newest.ID, recent[0].ID)
	assert.Equal(t, middle.ID, recent[1].ID)

	all := s.Recent(ctx, 0)
	require.Len(t, all, 3)
	assert.Equal(t, oldest.ID, all[2].ID)
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	s, _ := setupService(t)
	ctx := context.Background()

	img := "https://cdn.lelo.ge/news/a.jpg"
	item, err := s.Create(ctx, CreateNewsRequest{
		Title: "Before", Excerpt: "short", Content: "body", Author: "A",
		Category: models.LeagueEspuarta, ImageURL: &img,
	})
	require.NoError(t, err)
	before, err := s.Get(ctx, item.ID)
	require.NoError(t, err)

	title := "After"
	updated, err := s.Update(ctx, item.ID, UpdateNewsRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, before.Excerpt, updated.Excerpt)
	assert.Equal(t, before.Content, updated.Content)
	assert.Equal(t, before.Author, updated.Author)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.ImageURL, updated.ImageURL)
	assert.Equal(t, before.PublishedDate.UTC(), updated.PublishedDate.UTC())
	assert.Equal(t, before.ViewCount, updated.ViewCount)

	empty := ""
	cleared, err := s.Update(ctx, item.ID, UpdateNewsRequest{ImageURL: &empty})
	require.NoError(t, err)
	assert.Nil(t, cleared.ImageURL)

	_, err = s.Update(ctx, 9999, UpdateNewsRequest{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTitleTrimmedOnBothPaths(t *testing.T) {
	s, _ := setupService(t)
	ctx := context.Background()

	item := createNews(t, s, "  Derby day  ", models.LeagueTopDivision)
	assert.Equal(t, "Derby day", item.Title)

	title := "\tFinal whistle \n"
	updated, err := s.Update(ctx, item.ID, UpdateNewsRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Final whistle", updated.Title)
}

func TestDelete(t *testing.T) {
	s, _ := setupService(t)
	ctx := context.Background()

	item := createNews(t, s, "gone", models.LeagueB)
	require.NoError(t, s.Delete(ctx, item.ID))

	for _, it := range s.List(ctx, NewsFilter{IncludeArchived: true}) {
		assert.NotEqual(t, item.ID, it.ID)
	}
	assert.ErrorIs(t, s.Delete(ctx, item.ID), ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 4242), ErrNotFound)
}

func TestFilters(t *testing.T) {
	s, _ := setupService(t)
	ctx := context.Background()

	top := createNews(t, s, "top", models.LeagueTopDivision)
	createNews(t, s, "youth", models.LeagueA)
	archived := createNews(t, s, "archived", models.LeagueTopDivision)
	yes := true
	_, err := s.Update(ctx, archived.ID, UpdateNewsRequest{IsArchived: &yes})
	require.NoError(t, err)

	mens := s.List(ctx, NewsFilter{Categories: models.MensLeagues()})
	require.Len(t, mens, 1)
	assert.Equal(t, top.ID, mens[0].ID)

	withArchived := s.List(ctx, NewsFilter{Categories: models.MensLeagues(), IncludeArchived: true})
	assert.Len(t, withArchived, 2)

	found := s.List(ctx, NewsFilter{Search: "you"})
	require.Len(t, found, 1)
	assert.Equal(t, "youth", found[0].Title)
}

func TestViewIncrementsCount(t *testing.T) {
	s, _ := setupService(t)
	ctx := context.Background()

	item := createNews(t, s, "popular", models.LeagueTopDivision)
	_, err := s.View(ctx, item.ID)
	require.NoError(t, err)
	viewed, err := s.View(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, viewed.ViewCount)

	_, err = s.View(ctx, 777)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFailsSoft(t *testing.T) {
	db, mock := dbtest.Mock(t)
	mock.ExpectQuery(`SELECT \* FROM "news"`).WillReturnError(errors.New("relation \"news\" does not exist"))

	s := NewService(NewNewsRepository(db), clockwork.NewFakeClock())
	items := s.Recent(context.Background(), 5)

	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
