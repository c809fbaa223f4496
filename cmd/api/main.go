package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/gemini-micro-service/backend/config"
	"github.com/pageza/gemini-micro-service/backend/internal/server"
	"github.com/pageza/gemini-micro-service/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize external clients
	llm, closeLLM, err := service.NewTextGenerator(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to create %s client: %v", cfg.LLMProvider, err)
	}
	defer func() {
		if err := closeLLM(); err != nil {
			log.Printf("Failed to close %s client: %v", cfg.LLMProvider, err)
		}
	}()
	images := service.NewUnsplashService(cfg.UnsplashAccessKey, cfg.UnsplashAPIURL, cfg.ImageSearchTimeout)

	// Initialize services
	foodService := service.NewFoodService(llm, images, cfg.PlaceholderImageURL)
	chatService := service.NewChatService(llm)

	// Create and start server
	srv := server.New(cfg, foodService, chatService)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server with %s provider...", cfg.LLMProvider)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
		return
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
		return
	}
	log.Println("Server stopped")
}
