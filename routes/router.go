package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/config"
	"github.com/virtualzone/virtualzone-api/internal/activity"
	"github.com/virtualzone/virtualzone-api/internal/auth"
	"github.com/virtualzone/virtualzone-api/internal/club"
	"github.com/virtualzone/virtualzone-api/internal/listener"
	"github.com/virtualzone/virtualzone-api/internal/market"
	"github.com/virtualzone/virtualzone-api/internal/news"
	"github.com/virtualzone/virtualzone-api/internal/player"
	"github.com/virtualzone/virtualzone-api/internal/tournament"
	"github.com/virtualzone/virtualzone-api/internal/user"
)

// SetupRoutes builds the gin engine and registers every module's routes
// under /api.
func SetupRoutes(db *gorm.DB, cfg *config.Config, hub *listener.Hub) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.App.FrontendURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	jwtSecret := cfg.JWT.AccessTokenSecret

	api := r.Group("/api")
	{
		auth.AuthRoutes(api, db, cfg, jwtSecret)
		user.UserRoutes(api, db, cfg, jwtSecret)
		club.ClubRoutes(api, db, cfg, jwtSecret)
		player.PlayerRoutes(api, db, cfg, jwtSecret)
		market.MarketRoutes(api, db, cfg, jwtSecret)
		tournament.TournamentRoutes(api, db, jwtSecret)
		news.NewsRoutes(api, db, jwtSecret)
		activity.ActivityRoutes(api, db, cfg, jwtSecret)

		// Entity-change stream for clients that mirror collections live.
		api.GET("/events", listener.StreamHandler(hub))
	}

	return r
}
