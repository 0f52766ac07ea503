package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobtrack/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialise application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error releasing resources: %v", err)
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.AppPort)
		if err := app.Fiber.Listen(cfg.AppPort); err != nil {
			log.Printf("Server stopped listening: %v", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
