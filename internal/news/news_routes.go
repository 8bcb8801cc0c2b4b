package news

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

func RegisterNewsRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string, clock clockwork.Clock) {
	newsController := NewNewsController(NewService(NewNewsRepository(db), clock))

	publicNews := router.Group("/news")
	{
		publicNews.GET("", newsController.GetAllNews)
		publicNews.GET("/recent", newsController.GetRecentNews)
		publicNews.GET("/:news_id", newsController.GetNewsByID)
	}

	adminNews := router.Group("/news")
	adminNews.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		adminNews.POST("", newsController.CreateNews)
		adminNews.PUT("/:news_id", newsController.UpdateNews)
		adminNews.PATCH("/:news_id", newsController.UpdateNews)
		adminNews.DELETE("/:news_id", newsController.DeleteNews)
	}
}
