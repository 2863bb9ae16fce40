package tournament

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
)

// TournamentRoutes sets up public tournament reads and admin fixture management.
func TournamentRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	tournamentRepo := NewTournamentRepository(db)
	tournamentController := NewTournamentController(tournamentRepo)

	router.GET("/tournaments", tournamentController.GetAllTournaments)
	router.GET("/tournaments/:tournament_id", tournamentController.GetTournamentByID)
	router.GET("/tournaments/:tournament_id/standings", tournamentController.GetStandings)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.POST("/tournaments", tournamentController.CreateTournament)
		adminRoutes.PUT("/tournaments/:tournament_id", tournamentController.UpdateTournament)
		adminRoutes.DELETE("/tournaments/:tournament_id", tournamentController.DeleteTournament)
		adminRoutes.POST("/tournaments/:tournament_id/fixtures", tournamentController.GenerateFixtures)
		adminRoutes.PUT("/matches/:match_id", tournamentController.UpdateMatch)
	}
}
