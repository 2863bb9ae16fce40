package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/config"
	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
	"github.com/virtualzone/virtualzone-api/internal/user"
)

// AuthRoutes sets up registration, login and session endpoints.
func AuthRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config, jwtSecret string) {
	userRepo := user.NewUserRepository(db)
	authRepo := NewAuthRepository(db)
	controller := NewAuthController(userRepo, authRepo, cfg)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh", controller.Refresh)

		protected := authGroup.Group("/")
		protected.Use(mw.AuthMiddleware(jwtSecret, db))
		{
			protected.GET("/me", controller.Me)
			protected.POST("/logout", controller.Logout)
		}
	}
}
