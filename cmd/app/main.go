package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/codes"
	"github.com/knedy989-code/Cookie-RNG/internal/config"
	"github.com/knedy989-code/Cookie-RNG/internal/crate"
	"github.com/knedy989-code/Cookie-RNG/internal/database"
	"github.com/knedy989-code/Cookie-RNG/internal/database/postgres"
	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/economy"
	"github.com/knedy989-code/Cookie-RNG/internal/effects"
	"github.com/knedy989-code/Cookie-RNG/internal/event"
	"github.com/knedy989-code/Cookie-RNG/internal/inventory"
	"github.com/knedy989-code/Cookie-RNG/internal/item"
	"github.com/knedy989-code/Cookie-RNG/internal/logger"
	"github.com/knedy989-code/Cookie-RNG/internal/metrics"
	"github.com/knedy989-code/Cookie-RNG/internal/oracle"
	"github.com/knedy989-code/Cookie-RNG/internal/progression"
	"github.com/knedy989-code/Cookie-RNG/internal/quest"
	"github.com/knedy989-code/Cookie-RNG/internal/scheduler"
	"github.com/knedy989-code/Cookie-RNG/internal/server"
	"github.com/knedy989-code/Cookie-RNG/internal/shop"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
	"github.com/knedy989-code/Cookie-RNG/internal/worker"
)

// Background job cadence
const (
	effectTickInterval  = 1 * time.Second
	incomeTickInterval  = 1 * time.Second
	bundleSpawnInterval = 10 * time.Second
	snapshotFlushPeriod = 30 * time.Second
	shutdownTimeout     = 10 * time.Second

	workerCount     = 4
	workerQueueSize = 64
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == "dev",
	))

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Snapshot backend
	var repo state.SnapshotRepository
	var dbPool database.Pool
	switch cfg.SnapshotBackend {
	case "postgres":
		pool, err := database.NewPool(cfg.GetDBConnString(), 10, 5*time.Minute, 30*time.Minute)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := database.Migrate(pool); err != nil {
			return err
		}
		repo = postgres.NewSnapshotRepository(pool)
		dbPool = pool
	case "memory":
		repo = state.NewMemoryRepository()
	default:
		repo = state.NewFileRepository(cfg.SnapshotPath)
	}

	// Load or start a fresh save
	gs, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			return err
		}
		slog.Info("No snapshot found, starting fresh")
		gs = domain.NewGameState()
	}

	store := state.NewStore(gs)
	saver := state.NewSaver(store, repo, cfg.SaveDebounce)
	store.OnChange(saver.MarkDirty)

	// Event bus and metrics
	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return err
	}

	// Services
	economySvc := economy.NewService(store, bus)
	itemSvc := item.NewService(store, bus)
	inventorySvc := inventory.NewService(store, bus)
	crateSvc := crate.NewService(store, bus)
	shopSvc := shop.NewService(store, bus)
	progressionSvc := progression.NewService(store, bus)
	questSvc := quest.NewService(store, bus)
	effectsSvc := effects.NewService(store)
	oracleClient := oracle.NewHTTPClient(cfg.OracleURL, cfg.OracleAPIKey, cfg.OracleTimeout)
	oracleSvc := oracle.NewService(store, bus, oracleClient)
	codesSvc := codes.NewService(store, bus)

	// Background jobs
	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(effectTickInterval, worker.JobFunc(effectsSvc.Tick))
	sched.Schedule(incomeTickInterval, worker.JobFunc(economySvc.AutoIncomeTick))
	sched.Schedule(bundleSpawnInterval, worker.JobFunc(shopSvc.SpawnTick))
	sched.Schedule(snapshotFlushPeriod, worker.JobFunc(saver.Process))

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, server.Services{
		Store:       store,
		Economy:     economySvc,
		Item:        itemSvc,
		Inventory:   inventorySvc,
		Crate:       crateSvc,
		Shop:        shopSvc,
		Progression: progressionSvc,
		Quest:       questSvc,
		Oracle:      oracleSvc,
		Codes:       codesSvc,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	sched.Stop()
	pool.Stop()
	if err := saver.Close(shutdownCtx); err != nil {
		slog.Error("Final snapshot flush failed", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}
