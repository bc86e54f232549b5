package engagement

import (
	"context"
	"time"
)

// Repository provides session records.
type Repository interface {
	// ListBetween returns sessions started in [since, until).
	ListBetween(ctx context.Context, since, until time.Time) ([]SessionRecord, error)
}
