package admin

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAdminRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	panel := router.Group("/admin")
	panel.Use(mw.OptionalAuth(jwtSecret, db))
	{
		panel.GET("/panel", GetPanel)
	}
}
