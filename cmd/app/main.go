package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"kioskhub/cmd"
	httpadapter "kioskhub/internal/adapters/in/http"
	"kioskhub/internal/adapters/out/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := cmd.LoadConfig()
	if cfg.DBUser == "" {
		log.Fatalf("DB_USER is required")
	}
	if cfg.DBPassword == "" {
		log.Fatalf("DB_PASSWORD is required")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	pool := postgres.NewPool(postgres.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSslMode,
		MaxConns: cfg.DBMaxConns,
	})
	if err := pool.Open(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = pool.Close() }()

	if hasArg("--init-database") {
		if err := pool.Migrate(); err != nil {
			log.Fatalf("Failed to migrate database schema: %v", err)
		}
		logger.Info("database schema migrated")
	}

	root := cmd.NewCompositionRoot(cfg, pool, logger)
	sw := root.MaintenanceSwitch()
	server := root.Server(sw)

	jobManager := root.JobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = httpadapter.JSONSerializer{}
	e.HTTPErrorHandler = httpadapter.NewErrorHandler(logger)
	e.Use(httpadapter.RequestID())
	e.Use(httpadapter.MaintenanceGate(sw))
	server.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.HTTPHost, cfg.HTTPPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}

func hasArg(name string) bool {
	for _, arg := range os.Args[1:] {
		if arg == name {
			return true
		}
	}
	return false
}
