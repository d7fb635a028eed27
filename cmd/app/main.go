package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgeline/LegendaryForge_Go/internal/config"
	"github.com/forgeline/LegendaryForge_Go/internal/content"
	"github.com/forgeline/LegendaryForge_Go/internal/database"
	"github.com/forgeline/LegendaryForge_Go/internal/database/postgres"
	"github.com/forgeline/LegendaryForge_Go/internal/game"
	"github.com/forgeline/LegendaryForge_Go/internal/save"
	"github.com/forgeline/LegendaryForge_Go/internal/scheduler"
	"github.com/forgeline/LegendaryForge_Go/internal/server"
	"github.com/forgeline/LegendaryForge_Go/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	log := slog.Default()

	loader := content.NewLoader()
	catalog, err := loader.Load(cfg.ConfigDir)
	if err != nil {
		log.Error("Failed to load game content", "dir", cfg.ConfigDir, "error", err)
		os.Exit(1)
	}
	if err := loader.Validate(catalog); err != nil {
		log.Error("Invalid game content", "dir", cfg.ConfigDir, "error", err)
		os.Exit(1)
	}

	var opts []game.Option
	if cfg.RNGSeed != 0 {
		opts = append(opts, game.WithSeed(cfg.RNGSeed))
	}
	engine := game.New(catalog, opts...)

	// Persistence: postgres when reachable, in-memory otherwise so the
	// game still runs on a laptop without a database
	var dbPool *pgxpool.Pool
	var repo save.Repository
	dbPool, err = database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Warn("Database unavailable, saves are in-memory only", "error", err)
		repo = save.NewMemoryRepository()
	} else {
		if err := database.ApplySchema(context.Background(), dbPool); err != nil {
			log.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
		repo = postgres.NewSaveRepository(dbPool)
	}

	saver := save.NewService(repo, engine, catalog.Recipes, cfg.SaveSlot)
	if _, _, err := saver.Restore(context.Background()); err != nil {
		log.Error("Failed to restore save", "error", err)
		os.Exit(1)
	}

	// Background cadence: one pool drives the tick and autosave jobs
	pool := worker.NewPool(2, 16)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.TickInterval, worker.NewTickJob(engine))
	sched.Schedule(cfg.AutosaveInterval, worker.NewAutosaveJob(saver))

	var poolIface database.Pool
	if dbPool != nil {
		poolIface = dbPool
	}
	srv := server.NewServer(cfg.Port, cfg.APIKey, poolIface, engine, saver)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		log.Error("Server stopped unexpectedly", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	sched.Stop()
	pool.Stop()

	// Final save before the process exits
	if err := saver.Save(ctx); err != nil {
		log.Error("Final save failed", "error", err)
	}

	if err := srv.Stop(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	if dbPool != nil {
		dbPool.Close()
	}
	log.Info("Shutdown complete")
}
