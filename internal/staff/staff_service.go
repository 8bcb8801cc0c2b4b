package staff

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("staff member not found")

type Service struct {
	repo StaffRepository
}

func NewService(repo StaffRepository) *Service {
	return &Service{repo: repo}
}

// List returns all staff ordered by name. A read failure is logged and yields an empty list.
func (s *Service) List(ctx context.Context) []StaffMember {
	members, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("entity", "staff").Msg("list failed")
		return []StaffMember{}
	}
	if members == nil {
		return []StaffMember{}
	}
	return members
}

func (s *Service) Get(ctx context.Context, id uint) (*StaffMember, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *Service) Create(ctx context.Context, req CreateStaffRequest) (*StaffMember, error) {
	m := &StaffMember{
		Name:     strings.TrimSpace(req.Name),
		Position: req.Position,
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		e := strings.ToLower(strings.TrimSpace(*req.Email))
		m.Email = &e
	}
	if req.ImageURL != nil && *req.ImageURL != "" {
		m.ImageURL = req.ImageURL
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id uint, req UpdateStaffRequest) (*StaffMember, error) {
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
