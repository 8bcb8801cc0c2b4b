package user

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUserRoutes mounts the admin-only user manager.
func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	userController := NewUserController(NewService(NewUserRepository(db)))

	adminUsers := router.Group("/users")
	adminUsers.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		adminUsers.GET("", userController.ListUsers)
		adminUsers.POST("", userController.CreateUser)
		adminUsers.PUT("/:user_id/role", userController.SetRole)
		adminUsers.DELETE("/:user_id", userController.DeleteUser)
	}
}
