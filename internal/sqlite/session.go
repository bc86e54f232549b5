package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/repository"
	"github.com/google/uuid"
)

// SessionRepository implements engagement.Repository for SQLite
type SessionRepository struct {
	db Querier
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a learning session, assigning an id when missing
func (r *SessionRepository) Create(ctx context.Context, sess *engagement.SessionRecord) error {
	if sess == nil || strings.TrimSpace(sess.UserID) == "" || sess.StartedAt.IsZero() || sess.DurationMinutes < 0 {
		return repository.ErrInvalidInput
	}
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO learning_sessions (id, user_id, started_at, duration_minutes) VALUES (?, ?, ?, ?)`,
		sess.ID,
		sess.UserID,
		sess.StartedAt.Unix(),
		sess.DurationMinutes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// ListBetween returns sessions started in [since, until), oldest first
func (r *SessionRepository) ListBetween(ctx context.Context, since, until time.Time) ([]engagement.SessionRecord, error) {
	query := `
		SELECT id, user_id, started_at, duration_minutes
		FROM learning_sessions
		WHERE started_at >= ? AND started_at < ?
		ORDER BY started_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, ceilUnix(since), ceilUnix(until))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := []engagement.SessionRecord{}
	for rows.Next() {
		var sess engagement.SessionRecord
		var startedAt int64
		if err := rows.Scan(&sess.ID, &sess.UserID, &startedAt, &sess.DurationMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sess.StartedAt = time.Unix(startedAt, 0).UTC()
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}
	return sessions, nil
}

// ceilUnix rounds t up to whole seconds. started_at holds whole seconds, so
// comparing against the ceiling keeps both bounds exact.
func ceilUnix(t time.Time) int64 {
	sec := t.Unix()
	if t.Nanosecond() > 0 {
		sec++
	}
	return sec
}
