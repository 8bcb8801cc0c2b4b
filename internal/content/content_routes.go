package content

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterContentRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	validator.RegisterEnum("content_type", ValidType)

	contentController := NewContentController(NewService(NewContentRepository(db)))

	publicContent := router.Group("/content")
	{
		publicContent.GET("", contentController.GetContent)
		publicContent.GET("/:key", contentController.GetValue)
	}

	adminContent := router.Group("/content")
	adminContent.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		adminContent.PUT("", contentController.BulkUpsert)
		adminContent.PUT("/:key", contentController.UpsertValue)
		adminContent.DELETE("/:key", contentController.DeleteValue)
	}
}
