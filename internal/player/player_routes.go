package player

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	validator.RegisterEnum("team", ValidTeam)

	playerController := NewPlayerController(NewService(NewPlayerRepository(db)))

	publicPlayers := router.Group("/players")
	{
		publicPlayers.GET("", playerController.GetPlayers)
		publicPlayers.GET("/:player_id", playerController.GetPlayerByID)
	}

	adminPlayers := router.Group("/players")
	adminPlayers.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		adminPlayers.POST("", playerController.CreatePlayer)
		adminPlayers.PUT("/:player_id", playerController.UpdatePlayer)
		adminPlayers.PATCH("/:player_id", playerController.UpdatePlayer)
		adminPlayers.DELETE("/:player_id", playerController.DeletePlayer)
	}
}
