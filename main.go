package main

import (
	"context"
	"log"

	"github.com/virtualzone/virtualzone-api/config"
	_ "github.com/virtualzone/virtualzone-api/docs"
	"github.com/virtualzone/virtualzone-api/internal/activity"
	"github.com/virtualzone/virtualzone-api/internal/auth"
	"github.com/virtualzone/virtualzone-api/internal/club"
	"github.com/virtualzone/virtualzone-api/internal/listener"
	"github.com/virtualzone/virtualzone-api/internal/market"
	"github.com/virtualzone/virtualzone-api/internal/news"
	"github.com/virtualzone/virtualzone-api/internal/player"
	"github.com/virtualzone/virtualzone-api/internal/tournament"
	"github.com/virtualzone/virtualzone-api/internal/user"
	"github.com/virtualzone/virtualzone-api/routes"
)

// @title Virtual Zone API
// @version 1.0
// @description Administrative and fan-facing backend for the Virtual Zone league.
// @host localhost:8090
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &auth.RefreshToken{},
		&club.Club{}, &player.Player{},
		&market.TransferOffer{}, &market.Transfer{}, &market.MarketSettings{},
		&tournament.Tournament{}, &tournament.Match{},
		&news.NewsItem{}, &news.Comment{},
		&activity.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	hub := listener.NewHub()
	go listener.Start(context.Background(), cfg.DSN(), hub)

	r := routes.SetupRoutes(config.DB, cfg, hub)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
