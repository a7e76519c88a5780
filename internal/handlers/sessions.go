// sessions.go handles listening session HTTP endpoints.
//
// POST /api/v1/uploads               — Upload audio (+ optional question sheet)
// GET  /api/v1/sessions              — List the caller's sessions
// GET  /api/v1/sessions/:id          — Session status and metadata
// GET  /api/v1/sessions/:id/words    — Transcript tokens for the reading view
// GET  /api/v1/sessions/:id/exercise — Generated keyword exercise
package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/echobridge/listening-trainer-api/internal/exercise"
	"github.com/echobridge/listening-trainer-api/internal/middleware"
	"github.com/echobridge/listening-trainer-api/internal/models"
	"github.com/echobridge/listening-trainer-api/internal/services/questions"
	"github.com/echobridge/listening-trainer-api/internal/services/worker"
)

// allowedAudioTypes maps accepted upload extensions.
var allowedAudioTypes = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
	".flac": true,
	".webm": true,
}

// Upload accepts a multipart audio upload, stores it, creates a pending
// session, and queues background processing.
// POST /api/v1/uploads
//
// Form fields:
//
//	audio     — the recording (required; mp3, wav, m4a, ogg, flac, webm)
//	questions — optional question sheet file (.txt, .md, .pdf)
//
// Returns 202 Accepted immediately; poll GET /sessions/:id for status.
func (h *Handler) Upload(c *gin.Context) {
	maxBytes := int64(h.Config.MaxUploadMB) << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: fmt.Sprintf("No audio file provided. Upload a file with the field name 'audio'. Max size: %dMB.", h.Config.MaxUploadMB),
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedAudioTypes[ext] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: fmt.Sprintf("Unsupported audio format '%s'. Supported formats: mp3, wav, m4a, ogg, flac, webm", ext),
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Optional question sheet — its text feeds the keyword ranker
	questionText, err := h.readQuestionSheet(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_questions",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Store under a UUID name — never trust client filenames on disk
	storedName := uuid.New().String() + ext
	audioPath := filepath.Join(h.Config.UploadDir, storedName)

	if err := h.saveUpload(file, audioPath); err != nil {
		log.Printf("Failed to store upload %s: %v", header.Filename, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to store the uploaded file",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	s := &models.Session{
		AudioURL:     "/audio/" + storedName,
		OriginalName: header.Filename,
		Questions:    questionText,
		Status:       models.StatusPending,
	}
	if user := middleware.GetUser(c); user != nil {
		s.UserID = &user.ID
	}

	if err := h.DB.CreateSession(c.Request.Context(), s); err != nil {
		log.Printf("Failed to create session: %v", err)
		os.Remove(audioPath)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to create session record",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.Worker.Submit(worker.Job{SessionID: s.ID, AudioPath: audioPath}); err != nil {
		s.Status = models.StatusFailed
		s.ErrorMessage = err.Error()
		h.DB.UpdateSession(c.Request.Context(), s)

		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "queue_full",
			Message: "Processing queue is full; try again later",
			Code:    http.StatusServiceUnavailable,
		})
		return
	}

	c.JSON(http.StatusAccepted, models.UploadResponse{
		ID:        s.ID,
		AudioURL:  s.AudioURL,
		Questions: s.Questions,
		Status:    s.Status,
	})
}

// readQuestionSheet pulls question text from the upload: a "questions"
// file part (.txt/.md/.pdf) wins; a plain "questions" form value is the
// fallback.
func (h *Handler) readQuestionSheet(c *gin.Context) (string, error) {
	qFile, qHeader, err := c.Request.FormFile("questions")
	if err != nil {
		// No file part — accept inline text instead
		return strings.TrimSpace(c.PostForm("questions")), nil
	}
	defer qFile.Close()

	data, err := io.ReadAll(qFile)
	if err != nil {
		return "", fmt.Errorf("failed to read question sheet: %w", err)
	}

	return questions.ExtractText(qHeader.Filename, data)
}

// saveUpload copies the uploaded stream to disk, creating the upload
// directory on first use.
func (h *Handler) saveUpload(src io.Reader, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ListSessions returns the caller's sessions, newest first. Anonymous
// callers see anonymous sessions.
// GET /api/v1/sessions
func (h *Handler) ListSessions(c *gin.Context) {
	var userID *string
	if user := middleware.GetUser(c); user != nil {
		userID = &user.ID
	}

	sessions, err := h.DB.ListSessionsByUser(c.Request.Context(), userID, 50)
	if err != nil {
		log.Printf("Failed to list sessions: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list sessions",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if sessions == nil {
		sessions = []models.Session{}
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSession returns one session's status and metadata.
// GET /api/v1/sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s)
}

// GetWords returns the transcript as numbered tokens for the reading
// view, plus the keyword list.
// GET /api/v1/sessions/:id/words
func (h *Handler) GetWords(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}

	tokens := exercise.Tokenize(s.TranscriptText)
	words := make([]models.DisplayWord, len(tokens))
	for i, t := range tokens {
		words[i] = models.DisplayWord{ID: i, Text: t}
	}

	keywords := s.KeywordList()
	if keywords == nil {
		keywords = []string{}
	}

	c.JSON(http.StatusOK, models.WordsResponse{
		Words:    words,
		Keywords: keywords,
		Status:   s.Status,
	})
}

// GetExercise generates the click-the-keyword exercise for a completed
// session. Options are shuffled fresh on every call, so retrying a
// session yields a new layout.
// GET /api/v1/sessions/:id/exercise?total_options=N
func (h *Handler) GetExercise(c *gin.Context) {
	s, ok := h.loadSession(c)
	if !ok {
		return
	}

	// Pending/processing/failed sessions answer 200 with an empty option
	// list — the client polls this endpoint and renders by status.
	if s.Status != models.StatusCompleted {
		c.JSON(http.StatusOK, models.ExerciseResponse{
			Options:  []exercise.ExerciseOption{},
			Keywords: []string{},
			Status:   string(s.Status),
		})
		return
	}

	keywords := s.KeywordList()
	if len(keywords) == 0 {
		c.JSON(http.StatusOK, models.ExerciseResponse{
			Options:    []exercise.ExerciseOption{},
			Transcript: s.TranscriptText,
			Keywords:   []string{},
			Duration:   s.Duration,
			Status:     models.StatusNoKeywords,
		})
		return
	}

	var req models.ExerciseRequest
	c.ShouldBindQuery(&req) // Optional — zero value derives the total

	options := h.Engine.GenerateExerciseOptions(keywords, s.TranscriptText, req.TotalOptions, s.Duration)

	c.JSON(http.StatusOK, models.ExerciseResponse{
		Options:    options,
		Transcript: s.TranscriptText,
		Keywords:   keywords,
		Duration:   s.Duration,
		Status:     string(models.StatusCompleted),
	})
}

// loadSession fetches the :id session and enforces ownership: sessions
// that belong to an account are invisible to everyone else. Writes the
// error response itself when it returns ok=false.
func (h *Handler) loadSession(c *gin.Context) (*models.Session, bool) {
	s, err := h.DB.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Session not found",
			Code:    http.StatusNotFound,
		})
		return nil, false
	}

	if s.UserID != nil {
		user := middleware.GetUser(c)
		if user == nil || user.ID != *s.UserID {
			// 404, not 403 — don't reveal that the session exists
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Session not found",
				Code:    http.StatusNotFound,
			})
			return nil, false
		}
	}

	return s, true
}
