package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/lelo/config"
	"github.com/DhavalSuthar-24/lelo/internal/admin"
	"github.com/DhavalSuthar-24/lelo/internal/auth"
	"github.com/DhavalSuthar-24/lelo/internal/content"
	"github.com/DhavalSuthar-24/lelo/internal/gallery"
	"github.com/DhavalSuthar-24/lelo/internal/match"
	"github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/internal/news"
	"github.com/DhavalSuthar-24/lelo/internal/player"
	"github.com/DhavalSuthar-24/lelo/internal/staff"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
	"github.com/DhavalSuthar-24/lelo/internal/user"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
)

func SetupRoutes(cfg *config.Config, db *gorm.DB, files *storage.Service, clock clockwork.Clock) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Setup()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.Use(cors.New(corsConfig(cfg.App.FrontendURL)))
	r.MaxMultipartMemory = files.MaxBytes() + 1<<20

	r.Static("/uploads", cfg.App.UploadDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	secret := cfg.JWT.AccessTokenSecret
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg, clock)
	user.RegisterUserRoutes(api, db, secret)
	news.RegisterNewsRoutes(api, db, secret, clock)
	match.RegisterMatchRoutes(api, db, secret, clock)
	player.RegisterPlayerRoutes(api, db, secret)
	staff.RegisterStaffRoutes(api, db, secret)
	gallery.RegisterGalleryRoutes(api, db, files, secret, clock)
	content.RegisterContentRoutes(api, db, secret)
	storage.RegisterStorageRoutes(api, db, files, secret)
	admin.RegisterAdminRoutes(api, db, secret)

	return r
}

func corsConfig(frontendURL string) cors.Config {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if frontendURL == "" || frontendURL == "*" {
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
	} else {
		cc.AllowOrigins = []string{frontendURL}
	}
	return cc
}
