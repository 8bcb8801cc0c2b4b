package lelo

import (
	"context"
	"errors"
	"sync"

	"github.com/DhavalSuthar-24/lelo/internal/auth"
	"github.com/DhavalSuthar-24/lelo/internal/common"
)

var ErrNotSignedIn = errors.New("not signed in")

// Snapshot is an immutable view of the session. A zero Snapshot is signed out.
type Snapshot struct {
	User         *auth.UserResponse
	IsAdmin      bool
	AccessToken  string
	RefreshToken string
}

func (s Snapshot) SignedIn() bool {
	return s.User != nil && s.AccessToken != ""
}

// Identity is the caller as the server sees it, for capability checks in the UI.
func (s Snapshot) Identity() common.Identity {
	if !s.SignedIn() {
		return common.Identity{}
	}
	role := s.User.Role
	if s.IsAdmin {
		role = common.RoleAdmin
	}
	return common.Identity{UserID: s.User.ID, Email: s.User.Email, Name: s.User.Name, Role: role}
}

// Session tracks who is signed in. Every change replaces the snapshot and notifies subscribers.
type Session struct {
	base *BaseClient

	mu     sync.RWMutex
	snap   Snapshot
	subs   map[int]func(Snapshot)
	nextID int
}

func newSession(base *BaseClient) *Session {
	return &Session{base: base, subs: make(map[int]func(Snapshot))}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Session) accessToken() string {
	return s.Snapshot().AccessToken
}

// Subscribe calls fn after every change. The returned func removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) set(next Snapshot) {
	s.mu.Lock()
	s.snap = next
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

func (s *Session) SignIn(ctx context.Context, email, password string) (Snapshot, error) {
	var resp auth.AuthResponse
	err := s.base.Post(ctx, "/auth/login", auth.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return s.Snapshot(), err
	}
	return s.adopt(resp), nil
}

func (s *Session) adopt(resp auth.AuthResponse) Snapshot {
	u := resp.User
	next := Snapshot{User: &u, IsAdmin: resp.IsAdmin, AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	s.set(next)
	return next
}

// Register creates a user account and signs it in. New accounts never have the admin role.
func (s *Session) Register(ctx context.Context, email, name, password string) (Snapshot, error) {
	var resp auth.AuthResponse
	err := s.base.Post(ctx, "/auth/register", auth.RegisterRequest{Email: email, Name: name, Password: password}, &resp)
	if err != nil {
		return s.Snapshot(), err
	}
	return s.adopt(resp), nil
}

// SignOut revokes the refresh token when possible and always clears the session.
func (s *Session) SignOut(ctx context.Context) error {
	cur := s.Snapshot()
	var err error
	if cur.SignedIn() {
		err = s.base.Post(ctx, "/auth/logout", auth.LogoutRequest{RefreshToken: cur.RefreshToken}, nil)
	}
	s.set(Snapshot{})
	return err
}

// Refresh swaps the refresh token for a new access token and reloads the user. A rejected
// refresh token signs the session out.
func (s *Session) Refresh(ctx context.Context) (Snapshot, error) {
	cur := s.Snapshot()
	if cur.RefreshToken == "" {
		return cur, ErrNotSignedIn
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := s.base.Post(ctx, "/auth/refresh-token", auth.RefreshTokenRequest{RefreshToken: cur.RefreshToken}, &tok); err != nil {
		if IsUnauthorized(err) {
			s.set(Snapshot{})
		}
		return s.Snapshot(), err
	}

	// the new token has to be in place before /auth/me is called
	s.mu.Lock()
	s.snap.AccessToken = tok.AccessToken
	s.mu.Unlock()

	var me auth.SessionResponse
	if err := s.base.Get(ctx, "/auth/me", &me); err != nil {
		if IsUnauthorized(err) {
			s.set(Snapshot{})
		}
		return s.Snapshot(), err
	}
	u := me.User
	next := Snapshot{User: &u, IsAdmin: me.IsAdmin, AccessToken: tok.AccessToken, RefreshToken: cur.RefreshToken}
	s.set(next)
	return next, nil
}
