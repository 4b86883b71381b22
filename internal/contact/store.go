// internal/contact/store.go
package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission is one persisted contact form submission.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	ClubSlug  string    `json:"clubSlug,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists contact submissions.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert persists a submission, assigning its id and timestamp.
func (s *Store) Insert(ctx context.Context, submission *Submission) error {
	submission.ID = uuid.NewString()
	submission.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (id, name, email, phone, subject, message, club_slug, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Subject,
		submission.Message,
		submission.ClubSlug,
		submission.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// Recent returns the newest submissions, most recent first. The public
// API never lists submissions; this is for operational inspection and
// admin tooling against the database.
func (s *Store) Recent(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, subject, message, club_slug, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query contact submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var submission Submission
		if err := rows.Scan(
			&submission.ID,
			&submission.Name,
			&submission.Email,
			&submission.Phone,
			&submission.Subject,
			&submission.Message,
			&submission.ClubSlug,
			&submission.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		out = append(out, submission)
	}
	return out, rows.Err()
}
