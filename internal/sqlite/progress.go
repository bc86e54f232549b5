package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ganot/coursepulse/internal/domain/progress"
	"github.com/ganot/coursepulse/internal/repository"
)

// ProgressRepository implements progress.Repository for SQLite
type ProgressRepository struct {
	db Querier
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db Querier) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Upsert stores the current status of a user on a lesson, replacing any
// previous snapshot for the same pair.
func (r *ProgressRepository) Upsert(ctx context.Context, rec progress.Record) error {
	if strings.TrimSpace(rec.UserID) == "" || strings.TrimSpace(rec.LessonID) == "" || !rec.Status.Valid() {
		return repository.ErrInvalidInput
	}

	var completedAt any
	if rec.CompletedAt != nil {
		completedAt = rec.CompletedAt.Unix()
	}

	query := `
		INSERT INTO lesson_progress (user_id, lesson_id, status, completed_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, lesson_id) DO UPDATE SET
			status = excluded.status,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.UserID,
		rec.LessonID,
		rec.Status,
		completedAt,
		time.Now().Unix(),
	)
	if err != nil {
		if isCheckViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to upsert progress: %w", err)
	}
	return nil
}

// ListByUser returns one user's progress records
func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]progress.Record, error) {
	return r.list(ctx, `
		SELECT user_id, lesson_id, status, completed_at
		FROM lesson_progress
		WHERE user_id = ?
		ORDER BY lesson_id
	`, userID)
}

// ListAll returns every progress record
func (r *ProgressRepository) ListAll(ctx context.Context) ([]progress.Record, error) {
	return r.list(ctx, `
		SELECT user_id, lesson_id, status, completed_at
		FROM lesson_progress
		ORDER BY user_id, lesson_id
	`)
}

func (r *ProgressRepository) list(ctx context.Context, query string, args ...any) ([]progress.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	records := []progress.Record{}
	for rows.Next() {
		var rec progress.Record
		var completedAt sql.NullInt64
		if err := rows.Scan(&rec.UserID, &rec.LessonID, &rec.Status, &completedAt); err != nil {
			return nil, fmt.Errorf("failed to scan progress record: %w", err)
		}
		if completedAt.Valid {
			t := time.Unix(completedAt.Int64, 0).UTC()
			rec.CompletedAt = &t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress rows: %w", err)
	}
	return records, nil
}
