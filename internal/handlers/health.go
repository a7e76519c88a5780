// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, query, body, headers)
// - Response methods (JSON, String, Status)
// - Middleware data (c.Get/c.Set)
//
// We group related handlers into a struct (Handler) that holds shared
// dependencies.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echobridge/listening-trainer-api/internal/config"
	"github.com/echobridge/listening-trainer-api/internal/database"
	"github.com/echobridge/listening-trainer-api/internal/exercise"
	"github.com/echobridge/listening-trainer-api/internal/models"
	"github.com/echobridge/listening-trainer-api/internal/services/worker"
	"github.com/echobridge/listening-trainer-api/internal/vocabulary"
)

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
// This makes testing easy — just create a Handler with mock dependencies.
type Handler struct {
	DB         *database.DB
	Worker     *worker.Pool
	Engine     *exercise.Engine
	Vocabulary *vocabulary.Service
	Config     *config.Config
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(db *database.DB, wp *worker.Pool, engine *exercise.Engine, vocab *vocabulary.Service, cfg *config.Config) *Handler {
	return &Handler{
		DB:         db,
		Worker:     wp,
		Engine:     engine,
		Vocabulary: vocab,
		Config:     cfg,
	}
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	// Check database connectivity
	dbStatus := "healthy"
	if err := h.DB.HealthCheck(c.Request.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:     "ok",
		Version:    "1.0.0",
		Database:   dbStatus,
		Workers:    h.Worker.WorkerCount(),
		QueueDepth: h.Worker.QueueSize(),
	})
}
