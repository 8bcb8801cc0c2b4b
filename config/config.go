package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/xo/dburl"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultAccessSecret  = "your-very-strong-access-secret"
	defaultRefreshSecret = "your-very-strong-refresh-secret"
)

type Config struct {
	App struct {
		Env           string `env:"APP_ENV"         envDefault:"development"`
		Port          string `env:"PORT"            envDefault:"8088"`
		FrontendURL   string `env:"FRONTEND_URL"    envDefault:"http://localhost:3000"`
		UploadDir     string `env:"UPLOAD_DIR"      envDefault:"./public/uploads"`
		PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8088"`
		LogLevel      string `env:"LOG_LEVEL"       envDefault:"info"`
	}
	DB struct {
		URL      string `env:"DATABASE_URL"`
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"lelo_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"         envDefault:"your-very-strong-access-secret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"15"`
		RefreshTokenSecret       string `env:"JWT_REFRESH_TOKEN_SECRET"        envDefault:"your-very-strong-refresh-secret"`
		RefreshTokenExpiryDays   int    `env:"JWT_REFRESH_TOKEN_EXPIRY_DAYS"   envDefault:"7"`
	}
	Storage struct {
		Driver          string `env:"STORAGE_DRIVER"            envDefault:"local"`
		Region          string `env:"STORAGE_REGION"            envDefault:"eu-central-1"`
		Endpoint        string `env:"STORAGE_ENDPOINT"`
		AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY"`
		PublicURL       string `env:"STORAGE_PUBLIC_URL"`
		MaxUploadBytes  int64  `env:"STORAGE_MAX_UPLOAD_BYTES"  envDefault:"5242880"`
	}
	Admin struct {
		Email    string `env:"ADMIN_EMAIL"    envDefault:"admin@lelo.ge"`
		Password string `env:"ADMIN_PASSWORD"`
		Name     string `env:"ADMIN_NAME"     envDefault:"Administrator"`
	}
	Scheduler struct {
		Enabled        bool          `env:"SCHEDULER_ENABLED"     envDefault:"true"`
		MatchSweepSpec string        `env:"MATCH_SWEEP_SPEC"      envDefault:"0 */5 * * * *"`
		MatchDuration  time.Duration `env:"MATCH_DURATION"        envDefault:"2h"`
	}
	Seed struct {
		ContentFile string `env:"SEED_CONTENT_FILE" envDefault:"config/content.yaml"`
	}
}

// Global DB instance, set by ConnectDB.
var DB *gorm.DB

var appConfig *Config
var once sync.Once

// LoadConfig reads the environment (and an optional .env file) into a Config.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on system environment variables")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.UploadDir = getEnv("UPLOAD_DIR", "./public/uploads")
	cfg.App.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8088"), "/")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.DB.URL = getEnv("DATABASE_URL", "")
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "lelo_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.JWT.AccessTokenSecret = getEnv("JWT_ACCESS_TOKEN_SECRET", defaultAccessSecret)
	cfg.JWT.RefreshTokenSecret = getEnv("JWT_REFRESH_TOKEN_SECRET", defaultRefreshSecret)

	var err error
	cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 15)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %w", err)
	}
	cfg.JWT.RefreshTokenExpiryDays, err = getEnvAsInt("JWT_REFRESH_TOKEN_EXPIRY_DAYS", 7)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_EXPIRY_DAYS: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(getEnv("STORAGE_DRIVER", "local"))
	cfg.Storage.Region = getEnv("STORAGE_REGION", "eu-central-1")
	cfg.Storage.Endpoint = getEnv("STORAGE_ENDPOINT", "")
	cfg.Storage.AccessKeyID = getEnv("STORAGE_ACCESS_KEY_ID", "")
	cfg.Storage.SecretAccessKey = getEnv("STORAGE_SECRET_ACCESS_KEY", "")
	cfg.Storage.PublicURL = strings.TrimRight(getEnv("STORAGE_PUBLIC_URL", ""), "/")
	maxUpload, err := getEnvAsInt("STORAGE_MAX_UPLOAD_BYTES", 5*1024*1024)
	if err != nil {
		return nil, fmt.Errorf("invalid STORAGE_MAX_UPLOAD_BYTES: %w", err)
	}
	cfg.Storage.MaxUploadBytes = int64(maxUpload)
	if cfg.Storage.Driver != "local" && cfg.Storage.Driver != "s3" {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: expected local or s3", cfg.Storage.Driver)
	}

	cfg.Admin.Email = strings.ToLower(getEnv("ADMIN_EMAIL", "admin@lelo.ge"))
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", "")
	cfg.Admin.Name = getEnv("ADMIN_NAME", "Administrator")

	cfg.Scheduler.Enabled, err = getEnvAsBool("SCHEDULER_ENABLED", true)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_ENABLED: %w", err)
	}
	cfg.Scheduler.MatchSweepSpec = getEnv("MATCH_SWEEP_SPEC", "0 */5 * * * *")
	cfg.Scheduler.MatchDuration, err = getEnvAsDuration("MATCH_DURATION", 2*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid MATCH_DURATION: %w", err)
	}

	cfg.Seed.ContentFile = getEnv("SEED_CONTENT_FILE", "config/content.yaml")

	if cfg.JWT.AccessTokenSecret == defaultAccessSecret || cfg.JWT.RefreshTokenSecret == defaultRefreshSecret {
		log.Warn().Msg("using default JWT secrets, set JWT_ACCESS_TOKEN_SECRET and JWT_REFRESH_TOKEN_SECRET for production")
	}
	if cfg.DB.URL == "" && cfg.DB.Password == "password" && cfg.IsProduction() {
		log.Warn().Msg("using default DB password in production, set DB_PASSWORD")
	}
	if cfg.Admin.Password == "" {
		log.Warn().Str("email", cfg.Admin.Email).Msg("ADMIN_PASSWORD is empty, admin account will not be seeded")
	}

	appConfig = cfg
	return cfg, nil
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN returns the postgres connection string. DATABASE_URL wins over the discrete DB_* fields.
func (c *Config) DSN() (string, error) {
	if c.DB.URL != "" {
		u, err := dburl.Parse(c.DB.URL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		return u.DSN, nil
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
	), nil
}

// ConnectDB opens the postgres connection and sets the global DB.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	log.Info().Msg("connected to database")
	return gormDB, nil
}

// Initialize loads the configuration and connects to the database. Safe to call more than once.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg
		SetupLogger(appConfig.App.Env, appConfig.App.LogLevel)

		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded configuration. It exits if Initialize was never called.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal().Msg("configuration not loaded, call config.Initialize() first")
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected boolean, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected duration, got '%s'", key, valueStr)
	}
	return value, nil
}
