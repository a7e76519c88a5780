// Package main is the entry point for the Listening Trainer API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/echobridge/listening-trainer-api/internal/config"
	"github.com/echobridge/listening-trainer-api/internal/database"
	"github.com/echobridge/listening-trainer-api/internal/exercise"
	"github.com/echobridge/listening-trainer-api/internal/router"
	"github.com/echobridge/listening-trainer-api/internal/services/ranking"
	"github.com/echobridge/listening-trainer-api/internal/services/speech"
	"github.com/echobridge/listening-trainer-api/internal/services/worker"
	"github.com/echobridge/listening-trainer-api/internal/vocabulary"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Listening Trainer API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, workers=%d, gin_mode=%s", cfg.Port, cfg.WorkerCount, cfg.GinMode)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Connect to Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	// Run migrations
	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Step 3: Create Services
	engine := exercise.New(exercise.NewLexicon())

	if cfg.LLMKeywordsEnabled && cfg.OpenRouterAPIKey != "" {
		engine.SetRemoteRanker(ranking.New(cfg.OpenRouterAPIKey, cfg.OpenRouterModel))
		log.Printf("✅ LLM keyword ranking enabled (%s)", cfg.OpenRouterModel)
	} else {
		log.Println("⚠️  LLM keyword ranking disabled — using local frequency ranking")
	}

	transcriber := speech.NewTranscriber(cfg.SiliconFlowAPIKey, cfg.SiliconFlowModel)
	if transcriber.IsConfigured() {
		log.Printf("✅ Speech-to-text enabled (%s)", cfg.SiliconFlowModel)
	} else {
		log.Println("⚠️  Speech-to-text in sample mode (set SILICONFLOW_API_KEY to enable)")
	}

	vocab := vocabulary.NewService()
	log.Printf("✅ Vocabulary bank loaded (%d words)", vocab.Stats().TotalCount)

	// Step 4: Create and Start Worker Pool
	wp := worker.NewPool(cfg.WorkerCount, cfg.JobQueueSize, db, transcriber, engine)
	wp.Start()
	defer wp.Stop()

	// Step 5: Setup HTTP Router
	r := router.Setup(cfg, db, wp, engine, vocab)

	// Step 6: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 7: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
