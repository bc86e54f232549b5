package engagement

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service loads session records and builds engagement series.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new engagement service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Series builds the engagement series for a range token at now.
func (s *Service) Series(ctx context.Context, token string, now time.Time) (Series, error) {
	r, err := ParseRange(token)
	if err != nil {
		return Series{}, err
	}
	start := time.Now()
	defer func() {
		seriesDuration.WithLabelValues(string(r)).Observe(time.Since(start).Seconds())
	}()

	since, until := r.Since(now), r.Until(now)
	sessions, err := s.repo.ListBetween(ctx, since, until)
	if err != nil {
		return Series{}, fmt.Errorf("loading sessions: %w", err)
	}
	sessionsLoaded.Observe(float64(len(sessions)))
	s.logger.Debug("loaded sessions", "range", r, "since", since, "until", until, "count", len(sessions))

	return Aggregate(r, now, sessions)
}
