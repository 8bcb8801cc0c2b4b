package auth

import (
	"github.com/DhavalSuthar-24/lelo/config"
	"github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, clock clockwork.Clock) {
	authRepo := NewAuthRepository(db)
	users := user.NewService(user.NewUserRepository(db))
	authController := NewAuthController(authRepo, users, appConfig, clock)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", authController.Register)
		authPublic.POST("/login", authController.Login)
		authPublic.POST("/refresh-token", authController.RefreshToken)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authProtected.GET("/me", authController.GetSession)
		authProtected.POST("/logout", authController.Logout)
	}
}
