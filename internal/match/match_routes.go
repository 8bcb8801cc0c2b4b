package match

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string, clock clockwork.Clock) {
	validator.RegisterEnum("match_status", ValidStatus)

	matchRepo := NewGormMatchRepository(db)
	matchController := NewMatchController(NewService(matchRepo, clock))

	publicMatches := router.Group("/matches")
	{
		publicMatches.GET("", matchController.GetMatches)
		publicMatches.GET("/upcoming", matchController.GetUpcomingMatches)
		publicMatches.GET("/:match_id", matchController.GetMatchByID)
	}

	adminMatches := router.Group("/matches")
	adminMatches.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		adminMatches.POST("", matchController.CreateMatch)
		adminMatches.PUT("/:match_id", matchController.UpdateMatch)
		adminMatches.PATCH("/:match_id", matchController.UpdateMatch)
		adminMatches.DELETE("/:match_id", matchController.DeleteMatch)
	}
}
