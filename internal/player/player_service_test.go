package player

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewPlayerRepository(dbtest.Open(t, &Player{})))
}

func boolPtr(b bool) *bool { return &b }

func TestCreateDerivesCategory(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	tests := []struct {
		team Team
		want string
	}{
		{"", "Men's Rugby"},
		{TeamWomens, "Women's Rugby"},
		{TeamYouth, "Youth Rugby"},
		{TeamCoaches, "Coaches"},
	}
	for _, tt := range tests {
		p, err := s.Create(ctx, CreatePlayerRequest{Name: "P " + string(tt.team), Position: "Wing", Team: tt.team})
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.Category)
		assert.True(t, p.IsActive)
	}
}

func TestCreateIgnoresClientCategory(t *testing.T) {
	var req CreatePlayerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","position":"Prop","team":"youth","category":"Coaches"}`), &req))

	p, err := setupService(t).Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Youth Rugby", p.Category)
}

func TestInactiveIsStored(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	p, err := s.Create(ctx, CreatePlayerRequest{Name: "Retired", Position: "Lock", IsActive: boolPtr(false)})
	require.NoError(t, err)

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestStatsRoundTrip(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	p, err := s.Create(ctx, CreatePlayerRequest{
		Name: "Scorer", Position: "Centre",
		Stats: &PlayerStats{Matches: 12, Tries: 5, Points: 25, YellowCards: 1},
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, PlayerStats{Matches: 12, Tries: 5, Points: 25, YellowCards: 1}, got.Stats)

	updated, err := s.Update(ctx, p.ID, UpdatePlayerRequest{Stats: &PlayerStats{Matches: 13, Tries: 6, Points: 30, YellowCards: 1}})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Stats.Tries)
}

func TestListFilters(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	for _, req := range []CreatePlayerRequest{
		{Name: "Zurab", Position: "Prop"},
		{Name: "Ana", Position: "Wing", Team: TeamWomens},
		{Name: "Beka", Position: "Hooker", IsActive: boolPtr(false)},
		{Name: "Dato", Position: "Coach", Team: TeamCoaches},
	} {
		_, err := s.Create(ctx, req)
		require.NoError(t, err)
	}

	names := func(ps []Player) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Ana", "Beka", "Dato", "Zurab"}, names(s.List(ctx, PlayerFilter{})))
	assert.Equal(t, []string{"Beka", "Zurab"}, names(s.ByTeam(ctx, TeamMens)))
	assert.Equal(t, []string{"Zurab"}, names(s.List(ctx, PlayerFilter{Team: TeamMens, ActiveOnly: true})))
}

func TestUpdateTeamMovesCategory(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	age := 24
	p, err := s.Create(ctx, CreatePlayerRequest{Name: "Luka", Position: "Scrum-half", Age: &age})
	require.NoError(t, err)

	youth := TeamYouth
	updated, err := s.Update(ctx, p.ID, UpdatePlayerRequest{Team: &youth})
	require.NoError(t, err)
	assert.Equal(t, TeamYouth, updated.Team)
	assert.Equal(t, "Youth Rugby", updated.Category)
	assert.Equal(t, "Scrum-half", updated.Position)
	require.NotNil(t, updated.Age)
	assert.Equal(t, 24, *updated.Age)
}

func TestDeleteMissing(t *testing.T) {
	s := setupService(t)
	assert.ErrorIs(t, s.Delete(context.Background(), 42), ErrNotFound)
	_, err := s.Update(context.Background(), 42, UpdatePlayerRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFailsSoft(t *testing.T) {
	db, mock := dbtest.Mock(t)
	s := NewService(NewPlayerRepository(db))

	mock.ExpectQuery(`SELECT \* FROM "players"`).WillReturnError(errors.New("timeout"))

	got := s.List(context.Background(), PlayerFilter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateAppearsOnce(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	_, err := s.Create(ctx, CreatePlayerRequest{Name: "Beka", Position: "Lock"})
	require.NoError(t, err)
	created, err := s.Create(ctx, CreatePlayerRequest{Name: "Tornike", Position: "Hooker", Team: TeamYouth})
	require.NoError(t, err)

	count := 0
	for _, p := range s.List(ctx, PlayerFilter{}) {
		if p.ID == created.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
