package player

import (
	"database/sql/driver"
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/models"
)

type Team string

const (
	TeamMens    Team = "mens"
	TeamWomens  Team = "womens"
	TeamYouth   Team = "youth"
	TeamCoaches Team = "coaches"
)

var teamCategories = map[Team]string{
	TeamMens:    "Men's Rugby",
	TeamWomens:  "Women's Rugby",
	TeamYouth:   "Youth Rugby",
	TeamCoaches: "Coaches",
}

func (t Team) Valid() bool {
	_, ok := teamCategories[t]
	return ok
}

// Category is the display category for the team. It is never taken from client input.
func (t Team) Category() string {
	return teamCategories[t]
}

// ValidTeam is registered as the team binding tag.
func ValidTeam(s string) bool {
	return Team(strings.TrimSpace(s)).Valid()
}

// PlayerStats is stored as a JSON column.
type PlayerStats struct {
	Matches     int `json:"matches"`
	Tries       int `json:"tries"`
	Points      int `json:"points"`
	YellowCards int `json:"yellow_cards"`
	RedCards    int `json:"red_cards"`
}

func (s *PlayerStats) Scan(src interface{}) error {
	return models.ScanJSON(src, s)
}

func (s PlayerStats) Value() (driver.Value, error) {
	return models.ValueJSON(s)
}

type Player struct {
	models.BaseModel
	Name        string      `gorm:"not null;index" json:"name"`
	Position    string      `gorm:"not null" json:"position"`
	Age         *int        `json:"age,omitempty"`
	Height      string      `json:"height,omitempty"`
	Weight      string      `json:"weight,omitempty"`
	Nationality string      `json:"nationality,omitempty"`
	ImageURL    *string     `json:"image_url,omitempty"`
	IsActive    bool        `gorm:"not null;index" json:"is_active"`
	Team        Team        `gorm:"not null;index" json:"team"`
	Category    string      `gorm:"not null" json:"category"`
	Biography   string      `json:"biography,omitempty"`
	SponsorName string      `json:"sponsor_name,omitempty"`
	SponsorLogo *string     `json:"sponsor_logo,omitempty"`
	Stats       PlayerStats `gorm:"type:text" json:"stats"`
}

func (Player) TableName() string { return "players" }

type PlayerFilter struct {
	Team       Team
	ActiveOnly bool
}

type CreatePlayerRequest struct {
	Name        string       `json:"name" binding:"required,max=120" example:"გიორგი ბერიძე"`
	Position    string       `json:"position" binding:"required,max=60" example:"Fly-half"`
	Age         *int         `json:"age,omitempty" binding:"omitempty,min=1,max=100"`
	Height      string       `json:"height,omitempty" binding:"max=20"`
	Weight      string       `json:"weight,omitempty" binding:"max=20"`
	Nationality string       `json:"nationality,omitempty" binding:"max=60"`
	ImageURL    *string      `json:"image_url,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
	Team        Team         `json:"team,omitempty" binding:"omitempty,team" example:"mens"`
	Biography   string       `json:"biography,omitempty"`
	SponsorName string       `json:"sponsor_name,omitempty" binding:"max=120"`
	SponsorLogo *string      `json:"sponsor_logo,omitempty"`
	Stats       *PlayerStats `json:"stats,omitempty"`
}

type UpdatePlayerRequest struct {
	Name        *string      `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	Position    *string      `json:"position,omitempty" binding:"omitempty,min=1,max=60"`
	Age         *int         `json:"age,omitempty" binding:"omitempty,min=1,max=100"`
	Height      *string      `json:"height,omitempty" binding:"omitempty,max=20"`
	Weight      *string      `json:"weight,omitempty" binding:"omitempty,max=20"`
	Nationality *string      `json:"nationality,omitempty" binding:"omitempty,max=60"`
	ImageURL    *string      `json:"image_url,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
	Team        *Team        `json:"team,omitempty" binding:"omitempty,team"`
	Biography   *string      `json:"biography,omitempty"`
	SponsorName *string      `json:"sponsor_name,omitempty" binding:"omitempty,max=120"`
	SponsorLogo *string      `json:"sponsor_logo,omitempty"`
	Stats       *PlayerStats `json:"stats,omitempty"`
}

func optional(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func (r UpdatePlayerRequest) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.Name != nil {
		m["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Position != nil {
		m["position"] = *r.Position
	}
	if r.Age != nil {
		m["age"] = *r.Age
	}
	if r.Height != nil {
		m["height"] = *r.Height
	}
	if r.Weight != nil {
		m["weight"] = *r.Weight
	}
	if r.Nationality != nil {
		m["nationality"] = *r.Nationality
	}
	if r.ImageURL != nil {
		m["image_url"] = optional(*r.ImageURL)
	}
	if r.IsActive != nil {
		m["is_active"] = *r.IsActive
	}
	if r.Team != nil {
		m["team"] = *r.Team
		m["category"] = r.Team.Category()
	}
	if r.Biography != nil {
		m["biography"] = *r.Biography
	}
	if r.SponsorName != nil {
		m["sponsor_name"] = *r.SponsorName
	}
	if r.SponsorLogo != nil {
		m["sponsor_logo"] = optional(*r.SponsorLogo)
	}
	if r.Stats != nil {
		m["stats"] = *r.Stats
	}
	return m
}
