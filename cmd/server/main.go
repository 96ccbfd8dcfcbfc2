package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/config"
	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/handlers"
	"github.com/partnersinbahamas/airport-api/internal/media"
	"github.com/partnersinbahamas/airport-api/internal/router"
	"github.com/partnersinbahamas/airport-api/internal/service"
	"github.com/partnersinbahamas/airport-api/internal/ws"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := database.NewRepository(pool)
	if err := repo.Migrate(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	mediaStorage := media.NewStorage(cfg.MediaDir, cfg.MediaURL)

	hub := ws.NewHub()
	go hub.Run()

	svc := service.New(repo, tokens, mediaStorage, hub)
	h := handlers.NewHandler(svc)

	r := router.SetupRouter(router.Options{
		Handler:            h,
		Hub:                hub,
		Tokens:             tokens,
		MediaDir:           mediaStorage.Dir(),
		MediaURL:           cfg.MediaURL,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("API server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
