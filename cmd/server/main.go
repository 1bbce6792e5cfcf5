package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightgroup-service/internal/infrastructure/config"
	"flightgroup-service/internal/infrastructure/persistence"
	repoImpl "flightgroup-service/internal/interface/repository"
	"flightgroup-service/internal/usecase"
	"flightgroup-service/pkg/logger"
	"flightgroup-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domainRepo "flightgroup-service/internal/domain/repository"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flight Grouping Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	bookingRepo := repoImpl.NewGormBookingRepository(gormDB, cfg.MaxFlightEntries)
	if err := bookingRepo.Migrate(ctx); err != nil {
		log.Fatal("Failed to migrate booking table", "error", err)
	}

	// Run report archive is optional; skipped when no Mongo DSN is set
	var mongoClient *mongo.Client
	var reportRepo domainRepo.RunReportRepository
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		mongoClient, err = persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		db := persistence.GetDatabase(mongoClient, cfg.MongoDB)
		reportRepo = repoImpl.NewMongoRunReportRepository(db)
	}

	m := metrics.NewMetrics("flightgroup")
	processor := usecase.NewGroupingProcessor(
		bookingRepo,
		reportRepo,
		log,
		m,
		cfg.WindowHours,
		cfg.MaxFlightEntries,
	)

	// Single-pass mode: process once and exit
	if cfg.ProcessInterval <= 0 {
		if _, err := processor.ProcessTable(ctx); err != nil {
			log.Fatal("Grouping pass failed", "error", err)
		}
		if mongoClient != nil {
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error("MongoDB disconnect error", "error", err)
			}
		}
		log.Info("Flight Grouping Service finished")
		return
	}

	// Interval mode: run passes on a ticker and serve metrics
	go func() {
		processTicker := time.NewTicker(cfg.ProcessInterval)
		defer processTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Grouping processor stopped")
				return
			case <-processTicker.C:
				if _, err := processor.ProcessTable(ctx); err != nil {
					log.Error("Grouping pass failed", "error", err)
				}
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

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

	cancel() // Cancel the context to stop the processor loop

	if mongoClient != nil {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Flight Grouping Service stopped")
}
