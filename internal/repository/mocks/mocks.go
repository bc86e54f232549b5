package mocks

import (
	"context"
	"time"

	"github.com/ganot/coursepulse/internal/domain/catalog"
	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/domain/progress"
	"github.com/stretchr/testify/mock"
)

// CatalogRepository is a mock for progress.CatalogRepository.
type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]catalog.Course); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogRepository) ListModules(ctx context.Context) ([]catalog.Module, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]catalog.Module); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CatalogRepository) ListLessons(ctx context.Context) ([]catalog.Lesson, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]catalog.Lesson); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProgressRepository is a mock for progress.Repository.
type ProgressRepository struct {
	mock.Mock
}

func (m *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]progress.Record, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]progress.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProgressRepository) ListAll(ctx context.Context) ([]progress.Record, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]progress.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionRepository is a mock for engagement.Repository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) ListBetween(ctx context.Context, since, until time.Time) ([]engagement.SessionRecord, error) {
	args := m.Called(ctx, since, until)
	if list, ok := args.Get(0).([]engagement.SessionRecord); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
