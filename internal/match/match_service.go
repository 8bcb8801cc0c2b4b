package match

import (
	"context"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("match not found")

type Service struct {
	repo  MatchRepository
	clock clockwork.Clock
}

func NewService(repo MatchRepository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// List returns fixtures ordered by kick-off. A read failure is logged and yields an empty list.
func (s *Service) List(ctx context.Context, filter MatchFilter) []Match {
	matches, err := s.repo.GetMatches(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", "match").Msg("list failed")
		return []Match{}
	}
	if matches == nil {
		return []Match{}
	}
	return matches
}

// ByCategories returns the fixtures whose match type is any of cats. No categories means all.
func (s *Service) ByCategories(ctx context.Context, cats []models.League) []Match {
	return s.List(ctx, MatchFilter{Categories: cats})
}

// Upcoming returns fixtures kicking off at or after now, soonest first.
func (s *Service) Upcoming(ctx context.Context, cats []models.League, limit int) []Match {
	now := s.clock.Now().UTC()
	return s.List(ctx, MatchFilter{Categories: cats, From: &now, Limit: limit})
}

func (s *Service) Get(ctx context.Context, id uint) (*Match, error) {
	m, err := s.repo.GetMatchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) Create(ctx context.Context, req CreateMatchRequest) (*Match, error) {
	m := &Match{
		HomeTeam:     strings.TrimSpace(req.HomeTeam),
		AwayTeam:     strings.TrimSpace(req.AwayTeam),
		HomeTeamLogo: emptyToNil(req.HomeTeamLogo),
		AwayTeamLogo: emptyToNil(req.AwayTeamLogo),
		MatchDate:    req.MatchDate.UTC(),
		Venue:        req.Venue,
		MatchType:    req.MatchType,
		Status:       req.Status,
		HomeScore:    req.HomeScore,
		AwayScore:    req.AwayScore,
	}
	if m.Status == "" {
		m.Status = StatusScheduled
	}
	if err := s.repo.CreateMatch(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateMatchRequest) (*Match, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if fields := req.updates(); len(fields) > 0 {
		if err := s.repo.UpdateMatch(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.DeleteMatch(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
