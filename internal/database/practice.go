// practice.go handles practice record and statistics database operations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/echobridge/listening-trainer-api/internal/models"
)

// CreatePracticeRecord inserts one completed exercise attempt.
func (db *DB) CreatePracticeRecord(ctx context.Context, r *models.PracticeRecord) error {
	query := `
		INSERT INTO practice_records (session_id, user_id, clicked_words, total_words, accuracy, time_spent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return db.QueryRowContext(ctx, query,
		r.SessionID, r.UserID, r.ClickedWords, r.TotalWords, r.Accuracy, r.TimeSpent,
	).Scan(&r.ID, &r.CreatedAt)
}

// ListPracticeRecords returns a user's practice records, newest first.
// A nil userID lists anonymous records.
func (db *DB) ListPracticeRecords(ctx context.Context, userID *string, limit int) ([]models.PracticeRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var records []models.PracticeRecord
	var err error
	if userID != nil {
		err = db.SelectContext(ctx, &records,
			`SELECT * FROM practice_records WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
			*userID, limit)
	} else {
		err = db.SelectContext(ctx, &records,
			`SELECT * FROM practice_records WHERE user_id IS NULL ORDER BY created_at DESC LIMIT $1`,
			limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list practice records: %w", err)
	}
	return records, nil
}

// GetStatistics returns a user's aggregate statistics. A user without a
// statistics row gets the zero value, not an error.
func (db *DB) GetStatistics(ctx context.Context, userID string) (*models.UserStatistics, error) {
	var stats models.UserStatistics
	err := db.GetContext(ctx, &stats,
		`SELECT * FROM user_statistics WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.UserStatistics{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	return &stats, nil
}

// IncrementSessionCount bumps total_sessions after a successful upload.
func (db *DB) IncrementSessionCount(ctx context.Context, userID string) error {
	_, err := db.ExecContext(ctx, `
		UPDATE user_statistics
		SET total_sessions = total_sessions + 1, updated_at = NOW()
		WHERE user_id = $1`, userID)
	return err
}

// RecordPracticeStatistics folds one practice attempt into the rolling
// aggregates: total count, running average accuracy, and total time.
// The average is recomputed in SQL so concurrent attempts don't race
// through a read-modify-write in Go.
func (db *DB) RecordPracticeStatistics(ctx context.Context, userID string, accuracy float64, timeSpent int) error {
	_, err := db.ExecContext(ctx, `
		UPDATE user_statistics
		SET average_accuracy = (average_accuracy * total_practices + $2) / (total_practices + 1),
			total_practices = total_practices + 1,
			total_time_spent = total_time_spent + $3,
			updated_at = NOW()
		WHERE user_id = $1`, userID, accuracy, timeSpent)
	return err
}
