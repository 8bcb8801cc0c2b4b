package staff

import (
	mw "github.com/DhavalSuthar-24/lelo/internal/middleware"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterStaffRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	staffController := NewStaffController(NewService(NewStaffRepository(db)))

	publicStaff := router.Group("/staff")
	{
		publicStaff.GET("", staffController.GetStaff)
		publicStaff.GET("/:staff_id", staffController.GetStaffByID)
	}

	adminStaff := router.Group("/staff")
	adminStaff.Use(mw.AuthMiddleware(jwtSecret, db), rmiddleware.AdminMiddleware())
	{
		adminStaff.POST("", staffController.CreateStaff)
		adminStaff.PUT("/:staff_id", staffController.UpdateStaff)
		adminStaff.PATCH("/:staff_id", staffController.UpdateStaff)
		adminStaff.DELETE("/:staff_id", staffController.DeleteStaff)
	}
}
