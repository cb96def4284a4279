package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hrms-lite-backend/config"
	"hrms-lite-backend/internal/database"
	"hrms-lite-backend/internal/routes"
	"hrms-lite-backend/internal/storage"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	log.Info("1. Starting application, loading configuration...")
	cfg := config.Load()

	log.Info("2. Opening in-memory store...")
	db := storage.OpenDB()
	if cfg.SeedDemo {
		if err := database.SeedAll(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	log.Info("3. Store ready! Setting up routes...")
	app := routes.NewRouter(cfg, db)

	go func() {
		log.Infof("4. Server ready! Listening on %s", cfg.Address())
		if err := app.Listen(cfg.Address()); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("shutdown error: %v", err)
	}
}
