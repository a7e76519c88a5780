// practice.go handles practice attempts and learner statistics.
//
// POST /api/v1/practice         — Save a completed exercise attempt
// GET  /api/v1/practice/records — List the caller's practice history
// GET  /api/v1/statistics       — Aggregate statistics for the caller
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/echobridge/listening-trainer-api/internal/middleware"
	"github.com/echobridge/listening-trainer-api/internal/models"
)

// SavePractice stores one finished exercise attempt. Accuracy is computed
// server-side from the session's keyword list — the client only reports
// which words were clicked.
// POST /api/v1/practice
func (h *Handler) SavePractice(c *gin.Context) {
	var req models.SavePracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "session_id, clicked_words, and total_words are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	s, err := h.DB.GetSession(c.Request.Context(), req.SessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Session not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	accuracy := computeAccuracy(s.KeywordList(), req.ClickedWords)

	clickedJSON, err := json.Marshal(req.ClickedWords)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "clicked_words could not be encoded",
			Code:    http.StatusBadRequest,
		})
		return
	}

	record := &models.PracticeRecord{
		SessionID:    req.SessionID,
		ClickedWords: clickedJSON,
		TotalWords:   req.TotalWords,
		Accuracy:     accuracy,
		TimeSpent:    req.TimeSpent,
	}

	user := middleware.GetUser(c)
	if user != nil {
		record.UserID = &user.ID
	}

	if err := h.DB.CreatePracticeRecord(c.Request.Context(), record); err != nil {
		log.Printf("Failed to save practice record: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to save practice record",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	// Statistics only accumulate for logged-in learners
	if user != nil {
		if err := h.DB.RecordPracticeStatistics(c.Request.Context(), user.ID, accuracy, req.TimeSpent); err != nil {
			log.Printf("⚠️  Failed to update statistics for user %s: %v", user.ID, err)
			// Non-fatal — the record itself is saved
		}
	}

	c.JSON(http.StatusCreated, models.SavePracticeResponse{
		RecordID: record.ID,
		Accuracy: accuracy,
	})
}

// computeAccuracy scores clicked words against the session keywords as a
// percentage: |clicked ∩ keywords| / |keywords| × 100. A session with no
// keywords scores zero.
func computeAccuracy(keywords, clicked []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	keywordSet := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		keywordSet[strings.ToLower(k)] = true
	}

	hits := 0
	seen := make(map[string]bool, len(clicked))
	for _, w := range clicked {
		word := strings.ToLower(w)
		if keywordSet[word] && !seen[word] {
			seen[word] = true
			hits++
		}
	}

	return float64(hits) / float64(len(keywords)) * 100
}

// ListPracticeRecords returns the caller's practice history, newest first.
// GET /api/v1/practice/records
func (h *Handler) ListPracticeRecords(c *gin.Context) {
	var userID *string
	if user := middleware.GetUser(c); user != nil {
		userID = &user.ID
	}

	records, err := h.DB.ListPracticeRecords(c.Request.Context(), userID, 50)
	if err != nil {
		log.Printf("Failed to list practice records: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list practice records",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if records == nil {
		records = []models.PracticeRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// GetStatistics returns aggregate statistics for the caller. Anonymous
// callers get zeros — there is nothing durable to aggregate for them.
// GET /api/v1/statistics
func (h *Handler) GetStatistics(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		c.JSON(http.StatusOK, models.StatisticsResponse{})
		return
	}

	stats, err := h.DB.GetStatistics(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("Failed to get statistics for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load statistics",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.StatisticsResponse{
		TotalSessions:   stats.TotalSessions,
		TotalPractices:  stats.TotalPractices,
		AverageAccuracy: stats.AverageAccuracy,
		TotalTimeSpent:  stats.TotalTimeSpent,
	})
}
