package main

import (
	"github.com/forgeline/LegendaryForge_Go/internal/config"
	"github.com/forgeline/LegendaryForge_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "legendary-forge",
		Environment: cfg.Environment,
		AddSource:   addSource,
	})
}
