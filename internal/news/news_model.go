package news

import (
	"strings"
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/models"
)

// NewsItem is a published article tagged with a league.
type NewsItem struct {
	models.BaseModel
	Title         string        `gorm:"not null" json:"title"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `gorm:"type:text;not null" json:"content"`
	Author        string        `json:"author"`
	Category      models.League `gorm:"index;not null" json:"category"`
	PublishedDate time.Time     `gorm:"index;not null" json:"published_date"`
	ViewCount     int           `gorm:"not null;default:0" json:"view_count"`
	ImageURL      *string       `json:"image_url,omitempty"`
	IsArchived    bool          `gorm:"not null;index" json:"is_archived"`
}

// TableName keeps the table name stable regardless of the struct name.
func (NewsItem) TableName() string { return "news" }

// NewsFilter narrows List. Zero values mean "no constraint".
type NewsFilter struct {
	Categories      []models.League
	IncludeArchived bool
	Search          string
	Limit           int
}

type CreateNewsRequest struct {
	Title         string        `json:"title" binding:"required,max=255" example:"ლელომ მოიგო"`
	Excerpt       string        `json:"excerpt" binding:"omitempty,max=1000"`
	Content       string        `json:"content" binding:"required"`
	Author        string        `json:"author" binding:"omitempty,max=120"`
	Category      models.League `json:"category" binding:"required,league" example:"უმაღლესი"`
	PublishedDate *time.Time    `json:"published_date,omitempty"`
	ImageURL      *string       `json:"image_url,omitempty" binding:"omitempty,optional_url"`
	IsArchived    bool          `json:"is_archived"`
}

// UpdateNewsRequest is a partial update. Absent fields are left untouched.
type UpdateNewsRequest struct {
	Title         *string        `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Excerpt       *string        `json:"excerpt,omitempty" binding:"omitempty,max=1000"`
	Content       *string        `json:"content,omitempty" binding:"omitempty,min=1"`
	Author        *string        `json:"author,omitempty" binding:"omitempty,max=120"`
	Category      *models.League `json:"category,omitempty" binding:"omitempty,league"`
	PublishedDate *time.Time     `json:"published_date,omitempty"`
	ImageURL      *string        `json:"image_url,omitempty" binding:"omitempty,optional_url"`
	IsArchived    *bool          `json:"is_archived,omitempty"`
}

func (r UpdateNewsRequest) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Title != nil {
		m["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Excerpt != nil {
		m["excerpt"] = *r.Excerpt
	}
	if r.Content != nil {
		m["content"] = *r.Content
	}
	if r.Author != nil {
		m["author"] = *r.Author
	}
	if r.Category != nil {
		m["category"] = *r.Category
	}
	if r.PublishedDate != nil {
		m["published_date"] = r.PublishedDate.UTC()
	}
	if r.ImageURL != nil {
		// an empty string clears the image
		if *r.ImageURL == "" {
			m["image_url"] = nil
		} else {
			m["image_url"] = *r.ImageURL
		}
	}
	if r.IsArchived != nil {
		m["is_archived"] = *r.IsArchived
	}
	return m
}
