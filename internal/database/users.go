// users.go handles user-related database operations.
package database

import (
	"context"
	"fmt"

	"github.com/echobridge/listening-trainer-api/internal/models"
)

// CreateUser inserts a new user record and seeds their statistics row.
func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	if err := db.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Every account starts with an empty statistics row so reads never miss.
	_, err := db.ExecContext(ctx,
		`INSERT INTO user_statistics (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		u.ID)
	if err != nil {
		return fmt.Errorf("failed to seed statistics: %w", err)
	}
	return nil
}

// GetUserByLogin retrieves a user by username or email — learners may sign
// in with either.
func (db *DB) GetUserByLogin(ctx context.Context, usernameOrEmail string) (*models.User, error) {
	var u models.User
	err := db.GetContext(ctx, &u,
		`SELECT * FROM users WHERE username = $1 OR email = $1`, usernameOrEmail)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &u, nil
}

// GetUserByID retrieves a user by ID.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := db.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &u, nil
}
