package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeague(t *testing.T) {
	l, err := ParseLeague(" უმაღლესი ")
	require.NoError(t, err)
	assert.Equal(t, LeagueTopDivision, l)

	_, err = ParseLeague("Premiership")
	assert.Error(t, err)
}

func TestParseLeagueList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []League
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"mens group", "mens", []League{LeagueTopDivision, LeagueEspuarta}, false},
		{"youth group", "youth", []League{LeagueA, LeagueB, LeagueFestival}, false},
		{"explicit pair", "უმაღლესი,ესპუართა", []League{LeagueTopDivision, LeagueEspuarta}, false},
		{"duplicates collapse", "ლიგა 'ა',ლიგა 'ა'", []League{LeagueA}, false},
		{"unknown", "უმაღლესი,unknown", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLeagueList(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeaguesReturnsCopy(t *testing.T) {
	ls := Leagues()
	ls[0] = "changed"
	assert.Equal(t, LeagueTopDivision, Leagues()[0])
}

func TestScanJSON(t *testing.T) {
	var dst map[string]int
	require.NoError(t, ScanJSON([]byte(`{"a":1}`), &dst))
	assert.Equal(t, 1, dst["a"])

	dst = nil
	require.NoError(t, ScanJSON(`{"b":2}`, &dst))
	assert.Equal(t, 2, dst["b"])

	require.NoError(t, ScanJSON(nil, &dst))
	assert.Error(t, ScanJSON(42, &dst))
}
