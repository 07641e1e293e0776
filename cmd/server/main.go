package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdg-garage/trip-hotels-api/internal/auth"
	"github.com/gdg-garage/trip-hotels-api/internal/config"
	"github.com/gdg-garage/trip-hotels-api/internal/database"
	"github.com/gdg-garage/trip-hotels-api/internal/handlers"
	"github.com/gdg-garage/trip-hotels-api/internal/logger"
	"github.com/gdg-garage/trip-hotels-api/internal/repository"
	"github.com/gdg-garage/trip-hotels-api/internal/service"
	"github.com/gdg-garage/trip-hotels-api/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	version         = "1.0.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:        cfg.OTelEnabled,
		ServiceName:    cfg.OTelServiceName,
		ServiceVersion: version,
		Environment:    cfg.Environment,
		CollectorAddr:  cfg.OTelCollectorAddr,
	})
	if err != nil {
		zapLogger.Fatal("Failed to init telemetry", zap.Error(err))
	}

	// Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if cfg.JWTSecret == "" {
		zapLogger.Warn("JWT_SECRET is empty, every bearer token will be rejected")
	}

	authHandler := auth.NewAuthHandler(cfg.JWTSecret, repository.NewSessionRepository(db))
	hotelsService := service.NewHotelsService(
		repository.NewEnrollmentRepository(db),
		repository.NewTicketRepository(db),
		repository.NewHotelRepository(db),
		zapLogger,
	)
	hotelsHandler := handlers.NewHotelsHandler(hotelsService, zapLogger)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, zapLogger, authHandler, hotelsHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start Server
	go func() {
		zapLogger.Info("Starting server", zap.String("port", cfg.Port), zap.String("database", cfg.DatabaseDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Telemetry shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
