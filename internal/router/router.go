// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/echobridge/listening-trainer-api/internal/config"
	"github.com/echobridge/listening-trainer-api/internal/database"
	"github.com/echobridge/listening-trainer-api/internal/exercise"
	"github.com/echobridge/listening-trainer-api/internal/handlers"
	"github.com/echobridge/listening-trainer-api/internal/middleware"
	"github.com/echobridge/listening-trainer-api/internal/services/worker"
	"github.com/echobridge/listening-trainer-api/internal/vocabulary"
)

// Setup creates and configures the Gin router with all routes.
func Setup(cfg *config.Config, db *database.DB, wp *worker.Pool, engine *exercise.Engine, vocab *vocabulary.Service) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	h := handlers.NewHandler(db, wp, engine, vocab, cfg)
	rateLimiter := middleware.NewRateLimiter(cfg.UploadRateLimit)

	// Uploaded recordings are served back for the practice player
	r.Static("/audio", cfg.UploadDir)

	// --- Public routes (no auth required) ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)

	// --- JWT-required routes ---
	authed := r.Group("/api/v1")
	authed.Use(middleware.JWTAuth(db, cfg.JWTSecret))
	{
		authed.GET("/auth/me", h.GetMe)
	}

	// --- Practice routes — anonymous OR authenticated ---
	// A valid token attaches history to the account; no token still works.
	practice := r.Group("/api/v1")
	practice.Use(middleware.OptionalJWTAuth(db, cfg.JWTSecret))
	{
		practice.POST("/uploads", rateLimiter.RateLimit(), h.Upload)

		practice.GET("/sessions", h.ListSessions)
		practice.GET("/sessions/:id", h.GetSession)
		practice.GET("/sessions/:id/words", h.GetWords)
		practice.GET("/sessions/:id/exercise", h.GetExercise)

		practice.POST("/practice", h.SavePractice)
		practice.GET("/practice/records", h.ListPracticeRecords)
		practice.GET("/statistics", h.GetStatistics)

		practice.GET("/vocabulary/stats", h.VocabularyStats)
		practice.GET("/vocabulary/definition/:word", h.WordDefinition)
		practice.GET("/vocabulary/filter", h.VocabularyFilter)
		practice.GET("/vocabulary/practice/:id", h.VocabularyPractice)
	}

	return r
}
