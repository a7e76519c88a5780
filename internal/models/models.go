// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// The `db` tags work with sqlx for database column mapping; the database
// package handles persistence — no ORM magic.
package models

import (
	"encoding/json"
	"time"

	"github.com/echobridge/listening-trainer-api/internal/exercise"
)

// SessionStatus represents the processing state of a listening session.
// Go Pattern: We use string constants instead of enums (Go doesn't have enums).
type SessionStatus string

const (
	StatusPending    SessionStatus = "pending"
	StatusProcessing SessionStatus = "processing"
	StatusCompleted  SessionStatus = "completed"
	StatusFailed     SessionStatus = "failed"
)

// User represents a registered learner account.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // "-" means never serialize to JSON
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Session represents one uploaded recording and everything derived from it.
// UserID is nil for anonymous uploads.
type Session struct {
	ID             string          `json:"id" db:"id"`
	UserID         *string         `json:"user_id,omitempty" db:"user_id"`
	AudioURL       string          `json:"audio_url" db:"audio_url"`
	OriginalName   string          `json:"original_name" db:"original_name"`
	Questions      string          `json:"questions" db:"questions"`
	TranscriptText string          `json:"transcript_text" db:"transcript_text"`
	Keywords       json.RawMessage `json:"keywords,omitempty" db:"keywords"` // JSONB — ordered keyword array
	Duration       float64         `json:"duration,omitempty" db:"duration"` // Audio duration in seconds; 0 = unknown
	Status         SessionStatus   `json:"status" db:"status"`
	ErrorMessage   string          `json:"error_message,omitempty" db:"error_message"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// KeywordList decodes the stored keyword JSON. A missing or malformed value
// decodes to an empty list — the caller treats that as "no keywords".
func (s *Session) KeywordList() []string {
	if len(s.Keywords) == 0 {
		return nil
	}
	var keywords []string
	if err := json.Unmarshal(s.Keywords, &keywords); err != nil {
		return nil
	}
	return keywords
}

// PracticeRecord stores one completed exercise attempt.
type PracticeRecord struct {
	ID           string          `json:"id" db:"id"`
	SessionID    string          `json:"session_id" db:"session_id"`
	UserID       *string         `json:"user_id,omitempty" db:"user_id"`
	ClickedWords json.RawMessage `json:"clicked_words" db:"clicked_words"` // JSONB — words the learner selected
	TotalWords   int             `json:"total_words" db:"total_words"`
	Accuracy     float64         `json:"accuracy" db:"accuracy"` // Percentage 0–100
	TimeSpent    int             `json:"time_spent" db:"time_spent"` // Seconds
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// UserStatistics aggregates a learner's practice history.
type UserStatistics struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	TotalSessions   int       `json:"total_sessions" db:"total_sessions"`
	TotalPractices  int       `json:"total_practices" db:"total_practices"`
	AverageAccuracy float64   `json:"average_accuracy" db:"average_accuracy"`
	TotalTimeSpent  int       `json:"total_time_spent" db:"total_time_spent"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// --- Request/Response DTOs (Data Transfer Objects) ---
// Go Pattern: Separate structs for API input/output vs database models.
// This keeps the API contract clean and independent of the database schema.

// RegisterRequest is the JSON body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=40"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the JSON body for POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the account it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UploadResponse is returned by POST /api/v1/uploads once the session row
// exists and processing has been queued.
type UploadResponse struct {
	ID        string        `json:"id"`
	AudioURL  string        `json:"audio_url"`
	Questions string        `json:"questions"`
	Status    SessionStatus `json:"status"`
}

// DisplayWord is one transcript token for the reading view.
type DisplayWord struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// WordsResponse is returned by GET /api/v1/sessions/:id/words.
type WordsResponse struct {
	Words    []DisplayWord `json:"words"`
	Keywords []string      `json:"keywords"`
	Status   SessionStatus `json:"status"`
}

// ExerciseRequest carries the optional knobs for exercise generation.
type ExerciseRequest struct {
	TotalOptions int `form:"total_options"` // 0 = derive from keyword count
}

// ExerciseResponse is returned by GET /api/v1/sessions/:id/exercise.
// Status is the session status, or "no_keywords" when processing finished
// but the transcript yielded nothing to practice on.
type ExerciseResponse struct {
	Options    []exercise.ExerciseOption `json:"options"`
	Transcript string                    `json:"transcript"`
	Keywords   []string                  `json:"keywords"`
	Duration   float64                   `json:"duration"`
	Status     string                    `json:"status"`
}

// StatusNoKeywords is the ExerciseResponse status for a completed session
// whose transcript produced no usable keywords.
const StatusNoKeywords = "no_keywords"

// SavePracticeRequest is the JSON body for POST /api/v1/practice.
type SavePracticeRequest struct {
	SessionID    string   `json:"session_id" binding:"required"`
	ClickedWords []string `json:"clicked_words" binding:"required"`
	TotalWords   int      `json:"total_words" binding:"required"`
	TimeSpent    int      `json:"time_spent"`
}

// SavePracticeResponse confirms a stored practice attempt.
type SavePracticeResponse struct {
	RecordID string  `json:"record_id"`
	Accuracy float64 `json:"accuracy"`
}

// StatisticsResponse is returned by GET /api/v1/statistics. Anonymous users
// get the zero value.
type StatisticsResponse struct {
	TotalSessions   int     `json:"total_sessions"`
	TotalPractices  int     `json:"total_practices"`
	AverageAccuracy float64 `json:"average_accuracy"`
	TotalTimeSpent  int     `json:"total_time_spent"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Database   string `json:"database"`
	Workers    int    `json:"workers"`
	QueueDepth int    `json:"queue_depth"` // Jobs waiting for a worker
}
