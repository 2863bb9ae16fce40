package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/config"
	mw "github.com/virtualzone/virtualzone-api/internal/middleware"

	"github.com/virtualzone/virtualzone-api/internal/activity"
)

// UserRoutes sets up the admin user-management routes.
func UserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	userRepo := NewUserRepository(db)
	activityRepo := activity.NewActivityRepository(db)
	userController := NewUserController(userRepo, activityRepo)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.GET("/users", userController.GetAllUsers)
		adminRoutes.POST("/users", userController.CreateUser)
		adminRoutes.GET("/users/:user_id", userController.GetUserByID)
		adminRoutes.PUT("/users/:user_id", userController.UpdateUser)
		adminRoutes.PUT("/users/:user_id/status", userController.UpdateUserStatus)
		adminRoutes.DELETE("/users/:user_id", userController.DeleteUser)
	}
}
