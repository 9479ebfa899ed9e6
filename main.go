// main.go
package main

import (
	"log"
	"time"

	"food-order/cmd"
	"food-order/internal/data/repository"
	"food-order/internal/wire"
	"food-order/pkg/database"
	"food-order/pkg/token"
	"food-order/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("store_driver", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize the store backend
	var repos *repository.Repository
	switch config.Store.Driver {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
		repos = repository.NewPostgresRepository(db, logger)
	default:
		repos = repository.NewMemoryRepository(logger)
	}

	// Token manager for the auth boundary
	tokens := token.NewManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	if config.JWT.Secret == "" {
		logger.Warn("JWT_SECRET not set; auth endpoints will fail until it is configured")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, tokens, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
