package storage

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterStorageRoutes(router *gin.RouterGroup, db *gorm.DB, service *Service, jwtSecret string) {
	storageController := NewStorageController(service)

	admin := router.Group("/admin")
	admin.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		admin.POST("/uploads", storageController.Upload)
		admin.GET("/files", storageController.ListFiles)
		admin.DELETE("/files/:bucket/:key", storageController.DeleteFile)
	}
}
