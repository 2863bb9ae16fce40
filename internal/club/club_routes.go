package club

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/config"
	"github.com/virtualzone/virtualzone-api/internal/activity"
	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
)

// ClubRoutes sets up public club reads and admin club management.
func ClubRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	clubRepo := NewClubRepository(db)
	activityRepo := activity.NewActivityRepository(db)
	clubController := NewClubController(clubRepo, activityRepo)

	// Public reads for the fan-facing site.
	router.GET("/clubs", clubController.GetAllClubs)
	router.GET("/clubs/:club_id", clubController.GetClubByID)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.POST("/clubs", clubController.CreateClub)
		adminRoutes.PUT("/clubs/:club_id", clubController.UpdateClub)
		adminRoutes.PUT("/clubs/:club_id/manager", clubController.AssignManager)
		adminRoutes.PUT("/clubs/:club_id/budget", clubController.AdjustBudget)
		adminRoutes.DELETE("/clubs/:club_id", clubController.DeleteClub)
	}
}
