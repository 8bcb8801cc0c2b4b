package user

import (
	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/models"
)

// User is a site account. Password holds a bcrypt hash and is never serialized.
type User struct {
	models.BaseModel
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:user;index" json:"role"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == common.RoleAdmin
}

// Identity converts the account into the request identity shape.
func (u *User) Identity() common.Identity {
	return common.Identity{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"editor@lelo.ge"`
	Name     string `json:"name" binding:"omitempty,max=120" example:"Nino"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user" example:"user"`
}

// SetRoleRequest sets the role explicitly. An empty role toggles between admin and user.
type SetRoleRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=admin user"`
}
