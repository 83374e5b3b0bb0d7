// Package main is the entry point for the conference planner server.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conference-planner/backend/internal/api"
	"github.com/conference-planner/backend/internal/config"
	"github.com/conference-planner/backend/internal/fetch"
	"github.com/conference-planner/backend/internal/live"
	"github.com/conference-planner/backend/internal/planner"
	"github.com/conference-planner/backend/internal/storage"
	"github.com/conference-planner/backend/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
// Defaults to "dev" when not provided.
var version = "dev"

func main() {
	// Parse command-line flags; flags override the environment
	addr := flag.String("addr", "", "HTTP server address (overrides PLANNER_ADDR)")
	dataDir := flag.String("data", "", "Data directory for SQLite database (overrides PLANNER_DATA_DIR)")
	staticDir := flag.String("static", "./static", "Directory for static frontend files")
	healthCheck := flag.Bool("health-check", false, "Run health check and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	// Health check mode for Docker HEALTHCHECK
	if *healthCheck {
		if err := runHealthCheck(cfg.Addr); err != nil {
			log.Fatalf("Health check failed: %v", err)
		}
		os.Exit(0)
	}

	if envVer := os.Getenv("VERSION"); envVer != "" {
		version = envVer
	}

	log.Printf("Starting Conference Planner (version: %s)...", version)

	// Initialize database
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory %q: %v", cfg.DataDir, err)
	}
	dbPath := cfg.DataDir + "/conference-planner.db"
	db, err := storage.NewDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := storage.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations complete")

	// Initialize WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()
	broadcaster := websocket.NewEventBroadcaster(hub)

	// Initialize storage and services
	repo := storage.NewScheduleRepository(db)
	fetcher := fetch.NewFetcher(cfg.Mirrors, cfg.FetchTimeoutDuration())
	service := planner.NewService(repo, fetcher, broadcaster)

	// Start the live timeline scheduler
	scheduler := live.NewScheduler(service, broadcaster, cfg.LiveRefreshDuration())
	if err := scheduler.Start(); err != nil {
		log.Printf("Warning: Failed to start live scheduler: %v", err)
	}

	// Initialize HTTP router
	router := api.NewRouter(repo, db, hub, service, scheduler, *staticDir)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		log.Printf("Server listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

// runHealthCheck performs a health check against the running server.
func runHealthCheck(addr string) error {
	url := "http://localhost" + addr + "/api/health"
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return http.ErrAbortHandler
	}
	return nil
}
