package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	// Context keys
	ContextUserIDKey   = "auth_user_id"
	ContextIdentityKey = "auth_identity"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// Identity is the authenticated caller as resolved by the auth middleware. The zero value is an
// anonymous visitor.
type Identity struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// IsAdmin is the single capability check used by every mutation gate.
func (i Identity) IsAdmin() bool {
	return i.UserID != 0 && i.Role == RoleAdmin
}

// Anonymous reports whether no user is signed in.
func (i Identity) Anonymous() bool {
	return i.UserID == 0
}

// SetIdentity stores the caller on the gin context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(ContextIdentityKey, id)
	c.Set(ContextUserIDKey, id.UserID)
}

// IdentityFromContext returns the caller, or the anonymous identity when none was set.
func IdentityFromContext(c *gin.Context) Identity {
	v, exists := c.Get(ContextIdentityKey)
	if !exists {
		return Identity{}
	}
	id, _ := v.(Identity)
	return id
}

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userIDInterface, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDInterface.(uint)
	if !ok || userID == 0 {
		return 0, errors.New("user ID in context is not a valid uint")
	}
	return userID, nil
}
