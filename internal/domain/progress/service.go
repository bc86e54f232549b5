package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ganot/coursepulse/internal/domain/catalog"
)

// Service loads snapshots from the store and runs the progress reports.
type Service struct {
	catalog CatalogRepository
	records Repository
	logger  *slog.Logger
}

// NewService creates a new progress service.
func NewService(catalogRepo CatalogRepository, records Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{catalog: catalogRepo, records: records, logger: logger}
}

// LearnerProgress returns per-course completion for one user.
func (s *Service) LearnerProgress(ctx context.Context, userID string) (report Report, err error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	defer observe("learner", time.Now(), &err)

	idx, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	return PersonalProgress(idx, ForLearner(userID, records)), nil
}

// Popularity returns the cohort ranking, truncated to limit when limit > 0.
func (s *Service) Popularity(ctx context.Context, limit int) (ranked []CoursePopularity, err error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	defer observe("popularity", time.Now(), &err)

	idx, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	ranked = CohortEngagement(idx, records)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *Service) loadIndex(ctx context.Context) (*catalog.Index, error) {
	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}
	modules, err := s.catalog.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading modules: %w", err)
	}
	lessons, err := s.catalog.ListLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading lessons: %w", err)
	}

	idx, err := catalog.BuildIndex(courses, modules, lessons)
	if err != nil {
		return nil, fmt.Errorf("building catalog index: %w", err)
	}

	if excluded := idx.Excluded(); len(excluded) > 0 {
		for _, orphan := range excluded {
			excludedEntities.WithLabelValues(string(orphan.Kind)).Inc()
			s.logger.Debug("excluded orphan", "kind", orphan.Kind, "id", orphan.ID, "parent_id", orphan.ParentID)
		}
		s.logger.Info("catalog snapshot has orphans", "excluded", len(excluded))
	}
	return idx, nil
}

func observe(report string, start time.Time, err *error) {
	result := "ok"
	if *err != nil {
		result = "error"
	}
	reportDuration.WithLabelValues(report, result).Observe(time.Since(start).Seconds())
}
