package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/lelo/config"
	_ "github.com/DhavalSuthar-24/lelo/docs"
	"github.com/DhavalSuthar-24/lelo/internal/auth"
	"github.com/DhavalSuthar-24/lelo/internal/content"
	"github.com/DhavalSuthar-24/lelo/internal/gallery"
	"github.com/DhavalSuthar-24/lelo/internal/match"
	"github.com/DhavalSuthar-24/lelo/internal/news"
	"github.com/DhavalSuthar-24/lelo/internal/player"
	"github.com/DhavalSuthar-24/lelo/internal/scheduler"
	"github.com/DhavalSuthar-24/lelo/internal/seed"
	"github.com/DhavalSuthar-24/lelo/internal/staff"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
	"github.com/DhavalSuthar-24/lelo/internal/user"
	"github.com/DhavalSuthar-24/lelo/pkg/utils"
	"github.com/DhavalSuthar-24/lelo/routes"
)

//go:generate swag init

// @title Lelo Rugby Club API
// @version 1.0
// @description Content management API for the Lelo rugby club site.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}

	cfg := config.GetConfig()
	db := config.DB
	clock := clockwork.NewRealClock()

	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("auto migrate failed")
	}
	log.Info().Msg("auto migrate successful")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seed.Run(ctx, cfg,
		content.NewService(content.NewContentRepository(db)),
		user.NewService(user.NewUserRepository(db)),
	); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	if cfg.Storage.Driver == "local" {
		if err := utils.EnsureDir(cfg.App.UploadDir); err != nil {
			log.Fatal().Err(err).Msg("cannot create upload directory")
		}
	}
	store, err := storage.NewStoreFromConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up object storage")
	}
	files := storage.NewService(store, cfg.Storage.MaxUploadBytes)

	sched := scheduler.New()
	if cfg.Scheduler.Enabled {
		sweeper := match.NewStatusSweeper(match.NewGormMatchRepository(db), clock, cfg.Scheduler.MatchDuration)
		err := sched.Add("match-status", cfg.Scheduler.MatchSweepSpec, func(ctx context.Context) error {
			_, err := sweeper.Sweep(ctx)
			return err
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cannot schedule match status sweep")
		}
		sched.Start()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.SetupRoutes(cfg, db, files, clock),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Str("env", cfg.App.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	sched.Stop(shutdownCtx)
	log.Info().Msg("server stopped")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{}, &auth.RefreshToken{},
		&news.NewsItem{}, &match.Match{}, &player.Player{}, &staff.StaffMember{},
		&gallery.Image{}, &content.EditableContent{},
	)
}
