package sqlite

import (
	"context"
	"testing"

	"github.com/ganot/coursepulse/internal/domain/catalog"
	"github.com/ganot/coursepulse/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_CreateList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	require.NoError(t, repo.CreateCourse(ctx, catalog.Course{ID: "c2", Title: "Second", IsPublished: true}))
	require.NoError(t, repo.CreateCourse(ctx, catalog.Course{ID: "c1", Title: "First"}))
	require.NoError(t, repo.CreateModule(ctx, catalog.Module{ID: "m1", CourseID: "c2"}))
	require.NoError(t, repo.CreateLesson(ctx, catalog.Lesson{ID: "l1", ModuleID: "m1", IsPublished: true, DurationMinutes: 12}))

	courses, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	require.Equal(t, []catalog.Course{
		{ID: "c2", Title: "Second", IsPublished: true},
		{ID: "c1", Title: "First"},
	}, courses)

	modules, err := repo.ListModules(ctx)
	require.NoError(t, err)
	require.Equal(t, []catalog.Module{{ID: "m1", CourseID: "c2"}}, modules)

	lessons, err := repo.ListLessons(ctx)
	require.NoError(t, err)
	require.Equal(t, []catalog.Lesson{{ID: "l1", ModuleID: "m1", IsPublished: true, DurationMinutes: 12}}, lessons)
}

func TestCatalogRepository_AllowsOrphans(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	require.NoError(t, repo.CreateModule(ctx, catalog.Module{ID: "m1", CourseID: "deleted"}))
	require.NoError(t, repo.CreateLesson(ctx, catalog.Lesson{ID: "l1", ModuleID: "deleted"}))
}

func TestCatalogRepository_Conflicts(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	require.NoError(t, repo.CreateCourse(ctx, catalog.Course{ID: "c1"}))
	require.Equal(t, repository.ErrConflict, repo.CreateCourse(ctx, catalog.Course{ID: "c1"}))

	require.NoError(t, repo.CreateModule(ctx, catalog.Module{ID: "m1", CourseID: "c1"}))
	require.Equal(t, repository.ErrConflict, repo.CreateModule(ctx, catalog.Module{ID: "m1", CourseID: "c1"}))
}

func TestCatalogRepository_Validation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	require.Equal(t, repository.ErrInvalidInput, repo.CreateCourse(ctx, catalog.Course{}))
	require.Equal(t, repository.ErrInvalidInput, repo.CreateModule(ctx, catalog.Module{ID: "m1"}))
	require.Equal(t, repository.ErrInvalidInput, repo.CreateLesson(ctx, catalog.Lesson{ID: "l1", ModuleID: "m1", DurationMinutes: -1}))
}

func TestCatalogRepository_EmptyListsAreNotNil(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	courses, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	require.NotNil(t, courses)
	require.Empty(t, courses)

	lessons, err := repo.ListLessons(ctx)
	require.NoError(t, err)
	require.NotNil(t, lessons)
}
