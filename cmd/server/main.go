package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelmap-service/internal/infrastructure/config"
	"travelmap-service/internal/infrastructure/persistence"
	"travelmap-service/internal/interface/repository"
	"travelmap-service/internal/interface/rest"
	"travelmap-service/internal/usecase"
	"travelmap-service/pkg/logger"
	"travelmap-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Travelmap Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Flight record store
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Airport reference table
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories. The airport cache is explicit and owned here so
	// it can be cleared on a schedule.
	flightRepo := repository.NewMongoFlightRepository(db)
	airportCache := repository.NewCachedAirportRepository(repository.NewGormAirportRepository(gormDB))

	// Set up usecases
	m := metrics.NewMetrics("travelmap")
	mapBuilder := usecase.NewMapBuilder(flightRepo, airportCache, log, m)
	statsAggregator := usecase.NewStatsAggregator(flightRepo, log, m)
	flightLister := usecase.NewFlightLister(flightRepo, log, m, cfg.ListPageSize)

	// Periodically drop the airport cache so reference edits show up
	// without a restart.
	go func() {
		refreshTicker := time.NewTicker(cfg.CacheRefreshInterval)
		defer refreshTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Cache refresher stopped")
				return
			case <-refreshTicker.C:
				airportCache.Clear()
				log.Info("Airport cache cleared")
			}
		}
	}()

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	handler := rest.NewHandler(mapBuilder, statsAggregator, flightLister, log)
	handler.Register(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Travelmap Service stopped")
}
