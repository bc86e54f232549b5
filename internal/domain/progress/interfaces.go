package progress

import (
	"context"

	"github.com/ganot/coursepulse/internal/domain/catalog"
)

// CatalogRepository provides the course structure snapshot.
type CatalogRepository interface {
	ListCourses(ctx context.Context) ([]catalog.Course, error)
	ListModules(ctx context.Context) ([]catalog.Module, error)
	ListLessons(ctx context.Context) ([]catalog.Lesson, error)
}

// Repository provides lesson progress records.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	ListAll(ctx context.Context) ([]Record, error)
}
