// main.go
package main

import (
	"log"

	"movieweb/cmd"
	"movieweb/internal/data/repository"
	"movieweb/internal/omdb"
	"movieweb/internal/wire"
	"movieweb/pkg/database"
	"movieweb/pkg/utils"

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
		zap.String("backend", config.Store.Backend),
		zap.Bool("debug", config.App.Debug),
	)

	// Select the persistence backend
	var store repository.DataStore
	switch config.Store.Backend {
	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		store = repository.NewPostgresStore(db, logger)
		logger.Info("Database connected successfully")
	case "jsonfile":
		store = repository.NewJSONFileStore(config.Store.JSONFile, logger)
		logger.Info("Using flat-file store", zap.String("path", config.Store.JSONFile))
	default:
		logger.Fatal("Unknown store backend", zap.String("backend", config.Store.Backend))
	}
	defer store.Close()

	// Metadata lookup client
	lookup := omdb.NewClient(config.OMDB, logger)

	// Wire all dependencies
	app := wire.Wiring(store, lookup, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
