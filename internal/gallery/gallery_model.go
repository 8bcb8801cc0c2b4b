package gallery

import (
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/models"
)

// Image is a gallery record. It points at a stored file by URL and does not own it.
type Image struct {
	models.BaseModel
	URL        string        `gorm:"not null" json:"url"`
	Alt        string        `json:"alt"`
	Category   models.League `gorm:"index" json:"category,omitempty"`
	UploadedAt time.Time     `gorm:"index;not null" json:"uploaded_at"`
	UploadedBy *uint         `json:"uploaded_by,omitempty"`
}

func (Image) TableName() string { return "gallery_images" }

type ImageFilter struct {
	Category models.League
	Limit    int
}

type CreateImageRequest struct {
	URL      string        `json:"url" binding:"required,max=2048"`
	Alt      string        `json:"alt" binding:"max=300"`
	Category models.League `json:"category,omitempty" binding:"omitempty,league"`
}

// UploadImageRequest is the form part of a multipart gallery upload.
type UploadImageRequest struct {
	Alt      string        `form:"alt" binding:"max=300"`
	Category models.League `form:"category" binding:"omitempty,league"`
}

// UpdateImageRequest changes the caption or category. The URL is fixed once stored.
type UpdateImageRequest struct {
	Alt      *string        `json:"alt,omitempty" binding:"omitempty,max=300"`
	Category *models.League `json:"category,omitempty" binding:"omitempty,league"`
}

func (r UpdateImageRequest) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Alt != nil {
		m["alt"] = *r.Alt
	}
	if r.Category != nil {
		m["category"] = *r.Category
	}
	return m
}
