package staff

import (
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/models"
)

type StaffMember struct {
	models.BaseModel
	Name     string  `gorm:"not null;index" json:"name"`
	Position string  `json:"position"`
	Email    *string `json:"email,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (StaffMember) TableName() string { return "staff" }

type CreateStaffRequest struct {
	Name     string  `json:"name" binding:"required,max=120"`
	Position string  `json:"position" binding:"max=120"`
	Email    *string `json:"email,omitempty" binding:"omitempty,optional_email"`
	ImageURL *string `json:"image_url,omitempty"`
}

type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Position *string `json:"position,omitempty" binding:"omitempty,max=120"`
	Email    *string `json:"email,omitempty" binding:"omitempty,optional_email"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (r UpdateStaffRequest) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Name != nil {
		m["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Position != nil {
		m["position"] = *r.Position
	}
	if r.Email != nil {
		if e := strings.TrimSpace(*r.Email); e != "" {
			m["email"] = strings.ToLower(e)
		} else {
			m["email"] = nil
		}
	}
	if r.ImageURL != nil {
		if *r.ImageURL != "" {
			m["image_url"] = *r.ImageURL
		} else {
			m["image_url"] = nil
		}
	}
	return m
}
