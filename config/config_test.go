package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "admin@lelo.ge", cfg.Admin.Email)
	assert.Equal(t, 2*time.Hour, cfg.Scheduler.MatchDuration)
	assert.True(t, cfg.Scheduler.Enabled)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "Coach@Lelo.GE")
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("MATCH_DURATION", "90m")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("PUBLIC_BASE_URL", "https://api.lelo.ge/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "coach@lelo.ge", cfg.Admin.Email)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, 90*time.Minute, cfg.Scheduler.MatchDuration)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "https://api.lelo.ge", cfg.App.PublicBaseURL)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"expiry", "JWT_ACCESS_TOKEN_EXPIRY_MINUTES", "soon"},
		{"driver", "STORAGE_DRIVER", "ftp"},
		{"duration", "MATCH_DURATION", "forever"},
		{"bool", "SCHEDULER_ENABLED", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{}
	cfg.DB.Host = "localhost"
	cfg.DB.User = "postgres"
	cfg.DB.Password = "secret"
	cfg.DB.Name = "lelo_db"
	cfg.DB.Port = "5432"
	cfg.DB.SSLMode = "disable"

	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "dbname=lelo_db")
	assert.Contains(t, dsn, "sslmode=disable")

	cfg.DB.URL = "postgres://lelo:pw@db.example.com:6543/club?sslmode=require"
	dsn, err = cfg.DSN()
	require.NoError(t, err)
	assert.Contains(t, dsn, "db.example.com")
	assert.NotContains(t, dsn, "lelo_db")

	cfg.DB.URL = "::not a url::"
	_, err = cfg.DSN()
	assert.Error(t, err)
}
