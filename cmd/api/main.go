package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"local-jobs-backend/config"
	"local-jobs-backend/internal/delivery/http/v1"
	"local-jobs-backend/internal/domain"
	"local-jobs-backend/internal/ingest"
	"local-jobs-backend/internal/repository/jsonfile"
	"local-jobs-backend/internal/repository/memory"
	"local-jobs-backend/internal/usecase"
	"local-jobs-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting local jobs backend", "port", cfg.Port)

	// 3. Open the durable job store. A corrupt store is fatal: the file
	// must be repaired or reset, never silently discarded.
	jobStore, err := jsonfile.Open(cfg.JobsFile)
	if err != nil {
		logger.Log.Error("Failed to open job store", "file", cfg.JobsFile, "error", err)
		os.Exit(1)
	}

	// 4. Bulk-ingest the job seeker CSV once, before accepting traffic.
	// A missing source degrades to an empty bulk set.
	seekerStore := memory.NewSeekerStore()
	seekers, err := ingest.LoadSeekers(cfg.SeekersCSV, ingest.DefaultColumns())
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			logger.Log.Warn("Job seeker source unavailable, continuing with submitted data only", "file", cfg.SeekersCSV, "error", err)
		} else {
			logger.Log.Error("Failed to ingest job seekers", "file", cfg.SeekersCSV, "error", err)
			os.Exit(1)
		}
	}
	seekerStore.SetBulk(seekers)
	logger.Log.Info("Job seeker ingestion finished", "loaded", len(seekers))

	// 5. Setup UseCases
	validate := validator.New()
	jobUC := usecase.NewJobUsecase(jobStore, validate)
	seekerUC := usecase.NewSeekerUsecase(seekerStore, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:    jobUC,
		SeekerUC: seekerUC,
		Config:   cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
