package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateCandidate inserts a candidate record and returns it
func (db *DB) CreateCandidate(ctx context.Context, name, email, phone, roleApplied string) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, role_applied, status)
		 VALUES ($1, $2, $3, $4, 'in_progress')
		 RETURNING id, name, email, phone, role_applied, final_score, summary, status, created_at`,
		name, email, phone, roleApplied,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.RoleApplied, &c.FinalScore, &c.Summary, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return &c, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil when not found.
func (db *DB) GetCandidate(ctx context.Context, candidateID uuid.UUID) (*Candidate, error) {
	var c Candidate
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, role_applied, final_score, summary, status, created_at
		 FROM candidates WHERE id = $1`,
		candidateID,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.RoleApplied, &c.FinalScore, &c.Summary, &c.Status, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return &c, nil
}

// CompleteCandidate records the reviewer's final score and summary
func (db *DB) CompleteCandidate(ctx context.Context, candidateID uuid.UUID, finalScore int, summary string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET final_score = $1, summary = $2, status = 'completed' WHERE id = $3`,
		finalScore, summary, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// ListCandidates retrieves candidates newest first
func (db *DB) ListCandidates(ctx context.Context, limit int) ([]Candidate, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, phone, role_applied, final_score, summary, status, created_at
		 FROM candidates ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.RoleApplied, &c.FinalScore, &c.Summary, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
