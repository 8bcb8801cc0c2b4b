package match

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

var kickoff = time.Date(2025, 4, 12, 15, 0, 0, 0, time.UTC)

type fixture struct {
	svc   *Service
	repo  *GormMatchRepository
	clock *clockwork.FakeClock
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := dbtest.Open(t, &Match{})
	clock := clockwork.NewFakeClockAt(kickoff)
	repo := NewGormMatchRepository(db)
	return fixture{svc: NewService(repo, clock), repo: repo, clock: clock}
}

func (f fixture) create(t *testing.T, home string, at time.Time, league models.League) *Match {
	t.Helper()
	m, err := f.svc.Create(context.Background(), CreateMatchRequest{
		HomeTeam: home, AwayTeam: "ყოჩები", MatchDate: at, MatchType: league, Venue: "ავჭალა",
	})
	require.NoError(t, err)
	return m
}

func homes(ms []Match) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.HomeTeam)
	}
	return out
}

func TestCreateDefaultsToScheduled(t *testing.T) {
	f := setup(t)
	m := f.create(t, "ლელო", kickoff.Add(time.Hour), models.LeagueTopDivision)

	assert.NotZero(t, m.ID)
	assert.Equal(t, StatusScheduled, m.Status)
}

func TestByCategoriesReturnsUnion(t *testing.T) {
	f := setup(t)
	f.create(t, "top", kickoff, models.LeagueTopDivision)
	f.create(t, "esp", kickoff.Add(time.Hour), models.LeagueEspuarta)
	f.create(t, "a", kickoff.Add(2*time.Hour), models.LeagueA)
	f.create(t, "fest", kickoff.Add(3*time.Hour), models.LeagueFestival)

	got := f.svc.ByCategories(context.Background(), []models.League{models.LeagueTopDivision, models.LeagueEspuarta})
	assert.Equal(t, []string{"top", "esp"}, homes(got))

	all := f.svc.ByCategories(context.Background(), nil)
	assert.Len(t, all, 4)
}

func TestUpcomingIsInclusiveAndAscending(t *testing.T) {
	f := setup(t)
	f.create(t, "past", kickoff.Add(-time.Minute), models.LeagueTopDivision)
	f.create(t, "later", kickoff.Add(48*time.Hour), models.LeagueTopDivision)
	f.create(t, "now", kickoff, models.LeagueTopDivision)
	f.create(t, "soon", kickoff.Add(time.Hour), models.LeagueB)

	got := f.svc.Upcoming(context.Background(), nil, 0)
	assert.Equal(t, []string{"now", "soon", "later"}, homes(got))
	for _, m := range got {
		assert.False(t, m.MatchDate.Before(kickoff))
	}

	limited := f.svc.Upcoming(context.Background(), []models.League{models.LeagueTopDivision}, 1)
	assert.Equal(t, []string{"now"}, homes(limited))

	f.clock.Advance(2 * time.Hour)
	assert.Equal(t, []string{"later"}, homes(f.svc.Upcoming(context.Background(), nil, 0)))
}

func TestUpdateIsPartial(t *testing.T) {
	f := setup(t)
	m := f.create(t, "ლელო", kickoff, models.LeagueTopDivision)

	live := StatusLive
	score := 7
	updated, err := f.svc.Update(context.Background(), m.ID, UpdateMatchRequest{Status: &live, HomeScore: &score})
	require.NoError(t, err)

	assert.Equal(t, StatusLive, updated.Status)
	require.NotNil(t, updated.HomeScore)
	assert.Equal(t, 7, *updated.HomeScore)
	assert.Equal(t, "ლელო", updated.HomeTeam)
	assert.Equal(t, "ავჭალა", updated.Venue)

	_, err = f.svc.Update(context.Background(), 999, UpdateMatchRequest{Status: &live})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	f := setup(t)
	m := f.create(t, "ლელო", kickoff, models.LeagueTopDivision)

	require.NoError(t, f.svc.Delete(context.Background(), m.ID))
	assert.ErrorIs(t, f.svc.Delete(context.Background(), m.ID), ErrNotFound)
	_, err := f.svc.Get(context.Background(), m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "live", "finished"} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "postponed", "LIVE"} {
		assert.False(t, ValidStatus(s), s)
	}
}

func TestListFailsSoft(t *testing.T) {
	db, mock := dbtest.Mock(t)
	svc := NewService(NewGormMatchRepository(db), clockwork.NewFakeClockAt(kickoff))

	mock.ExpectQuery(`SELECT \* FROM "matches"`).WillReturnError(errors.New("connection refused"))

	got := svc.List(context.Background(), MatchFilter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepAdvancesStatuses(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	sweeper := NewStatusSweeper(f.repo, f.clock, 2*time.Hour)

	old := f.create(t, "old", kickoff.Add(-3*time.Hour), models.LeagueTopDivision)
	started := f.create(t, "started", kickoff.Add(-30*time.Minute), models.LeagueTopDivision)
	exact := f.create(t, "exact", kickoff, models.LeagueTopDivision)
	future := f.create(t, "future", kickoff.Add(time.Hour), models.LeagueTopDivision)

	changed, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)

	status := func(m *Match) MatchStatus {
		got, err := f.svc.Get(ctx, m.ID)
		require.NoError(t, err)
		return got.Status
	}
	assert.Equal(t, StatusFinished, status(old))
	assert.Equal(t, StatusLive, status(started))
	assert.Equal(t, StatusLive, status(exact))
	assert.Equal(t, StatusScheduled, status(future))

	f.clock.Advance(2 * time.Hour)
	changed, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)
	assert.Equal(t, StatusFinished, status(started))
	assert.Equal(t, StatusFinished, status(exact))
	assert.Equal(t, StatusLive, status(future))
}

func TestCreateAppearsOnce(t *testing.T) {
	f := setup(t)
	f.create(t, "ლელო", kickoff, models.LeagueTopDivision)
	created := f.create(t, "არმია", kickoff.Add(time.Hour), models.LeagueTopDivision)

	count := 0
	for _, m := range f.svc.List(context.Background(), MatchFilter{}) {
		if m.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
