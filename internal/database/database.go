// Package database handles PostgreSQL connections and queries.
//
// Go Pattern: We use the `sqlx` package which extends Go's standard
// `database/sql` with convenient features like scanning rows into structs.
// You write raw SQL — full control, no ORM.
//
// Go's database/sql has built-in connection pooling — one *sqlx.DB is
// created at startup and shared across the application; it's safe for
// concurrent use by multiple goroutines.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver — the underscore import runs its init()

	"github.com/echobridge/listening-trainer-api/internal/models"
)

// DB wraps the sqlx database connection with our application-specific methods.
// Go Pattern: Embedding (*sqlx.DB) gives us all of sqlx's methods
// automatically, plus we can add our own — composition over inheritance.
type DB struct {
	*sqlx.DB
}

// New creates a new database connection with connection pooling configured.
func New(databaseURL string) (*DB, error) {
	// sqlx.Connect both opens the connection and pings the database
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Conservative pool settings that also behave well on serverless
	// PostgreSQL, which closes idle connections aggressively.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Minute)
	db.SetConnMaxIdleTime(30 * time.Second)

	return &DB{db}, nil
}

// HealthCheck verifies the database connection is alive.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

// --- Session Operations ---

// CreateSession inserts a new listening session record.
// Returns the created session with its generated ID and timestamps.
func (db *DB) CreateSession(ctx context.Context, s *models.Session) error {
	query := `
		INSERT INTO sessions (user_id, audio_url, original_name, questions, transcript_text, keywords, duration, status, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	return db.QueryRowContext(ctx, query,
		s.UserID, s.AudioURL, s.OriginalName, s.Questions,
		s.TranscriptText, s.Keywords, s.Duration, s.Status, s.ErrorMessage,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// GetSession retrieves a single session by ID.
func (db *DB) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	// GetContext is sqlx's convenience method — it scans directly into a
	// struct using the `db:"column_name"` tags on the model.
	err := db.GetContext(ctx, &s, `SELECT * FROM sessions WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	return &s, nil
}

// UpdateSession saves the fields that change after audio processing.
func (db *DB) UpdateSession(ctx context.Context, s *models.Session) error {
	query := `
		UPDATE sessions
		SET transcript_text = $2, keywords = $3, duration = $4, status = $5,
			error_message = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	return db.QueryRowContext(ctx, query,
		s.ID, s.TranscriptText, s.Keywords, s.Duration, s.Status, s.ErrorMessage,
	).Scan(&s.UpdatedAt)
}

// ListSessionsByUser returns a user's sessions, newest first. A nil userID
// lists anonymous sessions.
func (db *DB) ListSessionsByUser(ctx context.Context, userID *string, limit int) ([]models.Session, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var sessions []models.Session
	var err error
	if userID != nil {
		err = db.SelectContext(ctx, &sessions,
			`SELECT * FROM sessions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
			*userID, limit)
	} else {
		err = db.SelectContext(ctx, &sessions,
			`SELECT * FROM sessions WHERE user_id IS NULL ORDER BY created_at DESC LIMIT $1`,
			limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
