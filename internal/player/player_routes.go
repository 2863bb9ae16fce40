package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/config"
	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
)

// PlayerRoutes sets up public player reads, DT listing toggles and admin CRUD.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo)

	router.GET("/players", playerController.GetAllPlayers)
	router.GET("/players/free-agents", playerController.GetFreeAgents)
	router.GET("/players/:player_id", playerController.GetPlayerByID)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		// DTs list/unlist their own players; authorization by role.
		authRoutes.PUT("/players/:player_id/transfer-listed",
			mw.RequireRole("dt", "admin"), playerController.SetTransferListed)
	}

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.POST("/players", playerController.CreatePlayer)
		adminRoutes.PUT("/players/:player_id", playerController.UpdatePlayer)
		adminRoutes.DELETE("/players/:player_id", playerController.DeletePlayer)
	}
}
