package player

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("player not found")

type Service struct {
	repo PlayerRepository
}

func NewService(repo PlayerRepository) *Service {
	return &Service{repo: repo}
}

// List returns players ordered by name. A read failure is logged and yields an empty list.
func (s *Service) List(ctx context.Context, filter PlayerFilter) []Player {
	players, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", "player").Msg("list failed")
		return []Player{}
	}
	if players == nil {
		return []Player{}
	}
	return players
}

func (s *Service) ByTeam(ctx context.Context, team Team) []Player {
	return s.List(ctx, PlayerFilter{Team: team})
}

func (s *Service) Get(ctx context.Context, id uint) (*Player, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreatePlayerRequest) (*Player, error) {
	team := req.Team
	if team == "" {
		team = TeamMens
	}
	p := &Player{
		Name:        strings.TrimSpace(req.Name),
		Position:    req.Position,
		Age:         req.Age,
		Height:      req.Height,
		Weight:      req.Weight,
		Nationality: req.Nationality,
		ImageURL:    blankToNil(req.ImageURL),
		IsActive:    true,
		Team:        team,
		Category:    team.Category(),
		Biography:   req.Biography,
		SponsorName: req.SponsorName,
		SponsorLogo: blankToNil(req.SponsorLogo),
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.Stats != nil {
		p.Stats = *req.Stats
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdatePlayerRequest) (*Player, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if fields := req.updates(); len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
