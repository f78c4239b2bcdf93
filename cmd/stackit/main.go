package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Japan1907/StackIt/infrastructure/config"
	"github.com/Japan1907/StackIt/infrastructure/di"
)

func main() {
	// Initialize context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container; this hydrates the store from storage
	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	snap := container.Store.Snapshot()
	container.Logger.Info("store hydrated",
		zap.String("environment", cfg.Environment),
		zap.String("dataDir", cfg.DataDir),
		zap.Int("questions", len(snap.Questions)),
		zap.Int("notifications", len(snap.Notifications)),
		zap.Bool("loggedIn", snap.CurrentUser != nil),
	)

	// Surface persistence failures without interrupting the store
	go func() {
		for err := range container.Mirror.Errors() {
			container.Logger.Error("persistence failure", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	container.Logger.Info("Shutting down...")

	if err := container.Close(); err != nil {
		log.Printf("Failed to close container: %v", err)
	}

	log.Println("Stopped")
}
