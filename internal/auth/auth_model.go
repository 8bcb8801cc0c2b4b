package auth

import (
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/DhavalSuthar-24/lelo/internal/user"
)

// RefreshToken is a server-side session handle. Token holds the keyed digest, never the token itself.
type RefreshToken struct {
	models.BaseModel
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"fan@example.com"`
	Name     string `json:"name" binding:"omitempty,max=120" example:"Giorgi"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@lelo.ge"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token"`
	InvalidateAllSessions bool   `json:"invalidate_all_sessions"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	IsAdmin      bool         `json:"is_admin"`
}

// SessionResponse is the snapshot returned by /auth/me.
type SessionResponse struct {
	User    UserResponse `json:"user"`
	IsAdmin bool         `json:"is_admin"`
}

func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
