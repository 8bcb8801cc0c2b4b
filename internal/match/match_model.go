package match

import (
	"strings"
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/models"
)

// MatchStatus is the closed set of fixture states.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusFinished  MatchStatus = "finished"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinished:
		return true
	}
	return false
}

// ValidStatus is registered as the match_status binding tag.
func ValidStatus(s string) bool {
	return MatchStatus(strings.TrimSpace(s)).Valid()
}

// Match is a fixture between two teams.
type Match struct {
	models.BaseModel
	HomeTeam     string        `gorm:"not null" json:"home_team"`
	AwayTeam     string        `gorm:"not null" json:"away_team"`
	HomeTeamLogo *string       `json:"home_team_logo,omitempty"`
	AwayTeamLogo *string       `json:"away_team_logo,omitempty"`
	MatchDate    time.Time     `gorm:"index;not null" json:"match_date"`
	Venue        string        `json:"venue"`
	MatchType    models.League `gorm:"index;not null" json:"match_type"`
	Status       MatchStatus   `gorm:"index;not null;default:scheduled" json:"status"`
	HomeScore    *int          `json:"home_score,omitempty"`
	AwayScore    *int          `json:"away_score,omitempty"`
}

func (Match) TableName() string { return "matches" }

type MatchFilter struct {
	Categories []models.League
	Status     MatchStatus
	From       *time.Time // inclusive
	Limit      int
}

type CreateMatchRequest struct {
	HomeTeam     string        `json:"home_team" binding:"required,max=120" example:"ლელო"`
	AwayTeam     string        `json:"away_team" binding:"required,max=120" example:"ყოჩები"`
	HomeTeamLogo *string       `json:"home_team_logo,omitempty" binding:"omitempty,optional_url"`
	AwayTeamLogo *string       `json:"away_team_logo,omitempty" binding:"omitempty,optional_url"`
	MatchDate    time.Time     `json:"match_date" binding:"required"`
	Venue        string        `json:"venue" binding:"omitempty,max=200"`
	MatchType    models.League `json:"match_type" binding:"required,league" example:"უმაღლესი"`
	Status       MatchStatus   `json:"status" binding:"omitempty,match_status" example:"scheduled"`
	HomeScore    *int          `json:"home_score,omitempty" binding:"omitempty,min=0"`
	AwayScore    *int          `json:"away_score,omitempty" binding:"omitempty,min=0"`
}

// UpdateMatchRequest is a partial update. Absent fields are left untouched.
type UpdateMatchRequest struct {
	HomeTeam     *string        `json:"home_team,omitempty" binding:"omitempty,min=1,max=120"`
	AwayTeam     *string        `json:"away_team,omitempty" binding:"omitempty,min=1,max=120"`
	HomeTeamLogo *string        `json:"home_team_logo,omitempty" binding:"omitempty,optional_url"`
	AwayTeamLogo *string        `json:"away_team_logo,omitempty" binding:"omitempty,optional_url"`
	MatchDate    *time.Time     `json:"match_date,omitempty"`
	Venue        *string        `json:"venue,omitempty" binding:"omitempty,max=200"`
	MatchType    *models.League `json:"match_type,omitempty" binding:"omitempty,league"`
	Status       *MatchStatus   `json:"status,omitempty" binding:"omitempty,match_status"`
	HomeScore    *int           `json:"home_score,omitempty" binding:"omitempty,min=0"`
	AwayScore    *int           `json:"away_score,omitempty" binding:"omitempty,min=0"`
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func (r UpdateMatchRequest) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if r.HomeTeam != nil {
		m["home_team"] = strings.TrimSpace(*r.HomeTeam)
	}
	if r.AwayTeam != nil {
		m["away_team"] = strings.TrimSpace(*r.AwayTeam)
	}
	if r.HomeTeamLogo != nil {
		m["home_team_logo"] = nullable(*r.HomeTeamLogo)
	}
	if r.AwayTeamLogo != nil {
		m["away_team_logo"] = nullable(*r.AwayTeamLogo)
	}
	if r.MatchDate != nil {
		m["match_date"] = r.MatchDate.UTC()
	}
	if r.Venue != nil {
		m["venue"] = *r.Venue
	}
	if r.MatchType != nil {
		m["match_type"] = *r.MatchType
	}
	if r.Status != nil {
		m["status"] = *r.Status
	}
	if r.HomeScore != nil {
		m["home_score"] = *r.HomeScore
	}
	if r.AwayScore != nil {
		m["away_score"] = *r.AwayScore
	}
	return m
}
