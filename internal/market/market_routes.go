package market

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/config"
	"github.com/virtualzone/virtualzone-api/internal/activity"
	"github.com/virtualzone/virtualzone-api/internal/club"
	mw "github.com/virtualzone/virtualzone-api/internal/middleware"
	"github.com/virtualzone/virtualzone-api/internal/player"
)

// MarketRoutes wires the transfer-market service and registers its routes.
func MarketRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	marketRepo := NewMarketRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	clubRepo := club.NewClubRepository(db)
	activityRepo := activity.NewActivityRepository(db)

	service := NewService(marketRepo, playerRepo, clubRepo, activityRepo,
		NewTxRunner(db), PolicyFromConfig(appConfig))
	controller := NewMarketController(service, marketRepo)

	// Public reads for the fan-facing site.
	router.GET("/market/status", controller.GetMarketStatus)
	router.GET("/market/transfers", controller.GetTransfers)
	router.GET("/market/players/:player_id/valuation", controller.GetValuation)

	// DT-facing negotiation flow.
	dtRoutes := router.Group("/")
	dtRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	dtRoutes.Use(mw.RequireRole("dt", "admin"))
	{
		dtRoutes.GET("/market/offers", controller.GetOffers)
		dtRoutes.POST("/market/offers", controller.MakeOffer)
		dtRoutes.GET("/market/offers/:offer_id", controller.GetOfferByID)
		dtRoutes.POST("/market/offers/:offer_id/accept", controller.AcceptOffer)
		dtRoutes.POST("/market/offers/:offer_id/reject", controller.RejectOffer)
		dtRoutes.POST("/market/offers/:offer_id/counter", controller.MakeCounterOffer)
		dtRoutes.POST("/market/offers/:offer_id/counter/respond", controller.RespondToCounterOffer)
		dtRoutes.GET("/market/offers/export", controller.ExportOffers)
		dtRoutes.GET("/market/transfers/export", controller.ExportTransfers)
	}

	// Admin market panel.
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(mw.AdminMiddleware())
	{
		adminRoutes.PUT("/market/status", controller.SetMarketStatus)
		adminRoutes.PUT("/market/transfers/:transfer_id/decision", controller.DecideTransfer)
	}
}
