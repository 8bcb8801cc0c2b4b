package gallery

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterGalleryRoutes(router *gin.RouterGroup, db *gorm.DB, files *storage.Service, jwtSecret string, clock clockwork.Clock) {
	galleryController := NewGalleryController(NewService(NewImageRepository(db), files, clock), files.MaxBytes())

	publicGallery := router.Group("/gallery")
	{
		publicGallery.GET("", galleryController.GetImages)
		publicGallery.GET("/:image_id", galleryController.GetImageByID)
	}

	adminGallery := router.Group("/gallery")
	adminGallery.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		adminGallery.POST("", galleryController.CreateImage)
		adminGallery.POST("/upload", galleryController.UploadImage)
		adminGallery.PUT("/:image_id", galleryController.UpdateImage)
		adminGallery.PATCH("/:image_id", galleryController.UpdateImage)
		adminGallery.DELETE("/:image_id", galleryController.DeleteImage)
	}
}
