// vocabulary.go handles vocabulary bank HTTP endpoints.
//
// GET /api/v1/vocabulary/stats            — Bank composition counts
// GET /api/v1/vocabulary/definition/:word — Definition lookup
// GET /api/v1/vocabulary/filter           — Filtered bank listing
// GET /api/v1/vocabulary/practice/:id     — Word-recognition drill for a session
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/echobridge/listening-trainer-api/internal/exercise"
	"github.com/echobridge/listening-trainer-api/internal/models"
	"github.com/echobridge/listening-trainer-api/internal/vocabulary"
)

// VocabularyStats returns counts of the built-in bank by category,
// level, and frequency.
// GET /api/v1/vocabulary/stats
func (h *Handler) VocabularyStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Vocabulary.Stats())
}

// WordDefinition looks up one word in the bank.
// GET /api/v1/vocabulary/definition/:word
func (h *Handler) WordDefinition(c *gin.Context) {
	word := c.Param("word")

	definition, ok := h.Vocabulary.Definition(word)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Word not found in the vocabulary bank",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"word":       word,
		"definition": definition,
	})
}

// VocabularyFilter lists bank entries matching the given filters. Empty
// params match everything, so /vocabulary/filter alone lists the whole bank.
// GET /api/v1/vocabulary/filter?category=environment&level=basic&frequency=high&limit=20
func (h *Handler) VocabularyFilter(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries := h.Vocabulary.Filter(c.Query("category"), c.Query("level"), c.Query("frequency"), limit)
	if entries == nil {
		entries = []vocabulary.Entry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(entries),
		"words": entries,
	})
}

// VocabularyPractice builds a word-recognition drill from a session's
// transcript: words that actually appeared mixed with bank distractors.
// GET /api/v1/vocabulary/practice/:id?total=100&from_text=15
func (h *Handler) VocabularyPractice(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}

	if s.TranscriptText == "" {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "not_ready",
			Message: "Session has no transcript yet",
			Code:    http.StatusConflict,
		})
		return
	}

	total, _ := strconv.Atoi(c.DefaultQuery("total", "100"))
	fromText, _ := strconv.Atoi(c.DefaultQuery("from_text", "15"))

	words := h.Vocabulary.PracticeWords(exercise.Tokenize(s.TranscriptText), total, fromText)

	c.JSON(http.StatusOK, gin.H{
		"session_id": s.ID,
		"words":      words,
	})
}
