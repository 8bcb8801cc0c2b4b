package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/utils"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrLastAdmin          = errors.New("the last administrator cannot be removed or demoted")
	ErrInvalidRole        = errors.New("unknown role")
)

// Service is the user manager: account listing, creation, role changes and sign-in checks.
type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// List returns every account, newest first. Read failures are logged and yield an empty list.
func (s *Service) List(ctx context.Context) []User {
	users, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("entity", "user").Msg("list failed")
		return []User{}
	}
	if users == nil {
		users = []User{}
	}
	return users
}

func (s *Service) Get(ctx context.Context, id uint) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// Create hashes the password and stores a new account. Role defaults to user.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := req.Role
	if role == "" {
		role = common.RoleUser
	}
	if !common.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{Email: email, Name: strings.TrimSpace(req.Name), Password: hash, Role: role}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetRole changes the role. An empty role flips admin <-> user.
func (s *Service) SetRole(ctx context.Context, id uint, role string) (*User, error) {
	if role == "" {
		u, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		role = common.RoleAdmin
		if u.IsAdmin() {
			role = common.RoleUser
		}
	}
	if !common.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.repo.SetRole(ctx, id, role)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Authenticate checks an email/password pair against the stored hash.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin creates the configured administrator when the site has none. It reports whether an
// account was created.
func (s *Service) EnsureAdmin(ctx context.Context, email, name, password string) (bool, error) {
	admins, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if admins > 0 {
		return false, nil
	}
	if password == "" {
		return false, errors.New("no administrator exists and no admin password is configured")
	}

	existing, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return false, err
	}
	if existing != nil {
		if _, err := s.repo.SetRole(ctx, existing.ID, common.RoleAdmin); err != nil {
			return false, err
		}
		return true, nil
	}

	_, err = s.Create(ctx, CreateUserRequest{Email: email, Name: name, Password: password, Role: common.RoleAdmin})
	return err == nil, err
}
