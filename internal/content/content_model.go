package content

import (
	"regexp"
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/models"
)

type ContentType string

const (
	TypeText     ContentType = "text"
	TypeNumber   ContentType = "number"
	TypeTextarea ContentType = "textarea"
)

const DefaultSection = "general"

func (t ContentType) Valid() bool {
	return t == TypeText || t == TypeNumber || t == TypeTextarea
}

// ValidType is registered as the content_type binding tag.
func ValidType(s string) bool {
	return ContentType(strings.TrimSpace(s)).Valid()
}

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,99}$`)

// ValidKey reports whether key is usable as a content key: lower case, digits, '_', '.', '-'.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// EditableContent is one piece of site copy addressed by a stable key.
type EditableContent struct {
	models.BaseModel
	Key     string      `gorm:"uniqueIndex;size:100;not null" json:"key" yaml:"key"`
	Value   string      `gorm:"type:text" json:"value" yaml:"value"`
	Type    ContentType `gorm:"size:20;not null" json:"type" yaml:"type"`
	Section string      `gorm:"size:60;index;not null" json:"section" yaml:"section"`
}

func (EditableContent) TableName() string { return "editable_content" }

// UpsertContentRequest writes a value. Type and section keep their stored values when omitted.
type UpsertContentRequest struct {
	Key     string      `json:"key,omitempty" binding:"omitempty,max=100"`
	Value   string      `json:"value"`
	Type    ContentType `json:"type,omitempty" binding:"omitempty,content_type"`
	Section string      `json:"section,omitempty" binding:"omitempty,max=60"`
}

type BulkUpsertRequest struct {
	Items []UpsertContentRequest `json:"items" binding:"required,min=1,dive"`
}

// ValueResponse is what GET /content/:key returns. Exists is false when the default was used.
type ValueResponse struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Exists bool   `json:"exists"`
}
