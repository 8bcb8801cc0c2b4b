package models

import (
	"fmt"
	"strings"
)

// League is the competition a news item, match or gallery image belongs to.
type League string

const (
	LeagueTopDivision League = "უმაღლესი"
	LeagueEspuarta    League = "ესპუართა"
	LeagueA           League = "ლიგა 'ა'"
	LeagueB           League = "ლიგა 'ბ'"
	LeagueFestival    League = "საფესტივალო"
)

var allLeagues = []League{LeagueTopDivision, LeagueEspuarta, LeagueA, LeagueB, LeagueFestival}

// Leagues returns every league in display order.
func Leagues() []League {
	out := make([]League, len(allLeagues))
	copy(out, allLeagues)
	return out
}

// MensLeagues are shown on the men's league page.
func MensLeagues() []League {
	return []League{LeagueTopDivision, LeagueEspuarta}
}

// YouthLeagues are shown on the youth league page.
func YouthLeagues() []League {
	return []League{LeagueA, LeagueB, LeagueFestival}
}

func (l League) Valid() bool {
	for _, known := range allLeagues {
		if l == known {
			return true
		}
	}
	return false
}

func (l League) String() string {
	return string(l)
}

// ParseLeague trims s and checks it against the closed set.
func ParseLeague(s string) (League, error) {
	l := League(strings.TrimSpace(s))
	if !l.Valid() {
		return "", fmt.Errorf("unknown league category %q", s)
	}
	return l, nil
}

// ParseLeagueList parses a comma separated list of leagues. "mens" and "youth" expand to their
// groups. An empty input yields nil.
func ParseLeagueList(raw string) ([]League, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	switch raw {
	case "mens":
		return MensLeagues(), nil
	case "youth":
		return YouthLeagues(), nil
	}

	var out []League
	seen := make(map[League]bool)
	for _, part := range strings.Split(raw, ",") {
		l, err := ParseLeague(part)
		if err != nil {
			return nil, err
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out, nil
}
