package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ganot/coursepulse/internal/domain/catalog"
	"github.com/ganot/coursepulse/internal/domain/progress"
	"github.com/ganot/coursepulse/internal/repository"
	"github.com/ganot/coursepulse/internal/sqlite"
	"github.com/stretchr/testify/require"
)

const sample = `
courses:
  - id: c1
    title: Go Basics
    is_published: true
modules:
  - id: m1
    course_id: c1
lessons:
  - id: l1
    module_id: m1
    is_published: true
    duration_minutes: 10
  - id: l2
    module_id: m1
    is_published: true
progress:
  - user_id: u1
    lesson_id: l1
    status: completed
    completed_at: 2026-10-01T09:00:00Z
  - user_id: u1
    lesson_id: l2
    status: in_progress
sessions:
  - user_id: u1
    started_at: 2026-10-13T08:15:00Z
    duration_minutes: 20
`

func newStore(t *testing.T) (Store, *sqlite.DB) {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	return Store{
		Catalog:  sqlite.NewCatalogRepository(db),
		Progress: sqlite.NewProgressRepository(db),
		Sessions: sqlite.NewSessionRepository(db),
	}, db
}

func TestParse(t *testing.T) {
	snap, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, snap.Courses, 1)
	require.Len(t, snap.Lessons, 2)
	require.Equal(t, progress.StatusCompleted, snap.Progress[0].Status)
	require.NotNil(t, snap.Progress[0].CompletedAt)
	require.True(t, time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC).Equal(*snap.Progress[0].CompletedAt))
	require.Nil(t, snap.Progress[1].CompletedAt)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "courses: [\n"},
		{"course without id", "courses:\n  - title: x\n"},
		{"module without course", "modules:\n  - id: m1\n"},
		{"unknown status", "progress:\n  - user_id: u1\n    lesson_id: l1\n    status: done\n"},
		{"session without start", "sessions:\n  - user_id: u1\n"},
		{"negative duration", "lessons:\n  - id: l1\n    module_id: m1\n    duration_minutes: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	snap, err := Load(path)
	require.NoError(t, err)
	require.Len(t, snap.Sessions, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	store, db := newStore(t)

	snap, err := Parse([]byte(sample))
	require.NoError(t, err)

	sum, err := Import(ctx, store, snap)
	require.NoError(t, err)
	require.Equal(t, Summary{Courses: 1, Modules: 1, Lessons: 2, Progress: 2, Sessions: 1}, sum)
	require.NotEmpty(t, snap.Sessions[0].ID)

	lessons, err := sqlite.NewCatalogRepository(db).ListLessons(ctx)
	require.NoError(t, err)
	require.Equal(t, []catalog.Lesson{
		{ID: "l1", ModuleID: "m1", IsPublished: true, DurationMinutes: 10},
		{ID: "l2", ModuleID: "m1", IsPublished: true},
	}, lessons)

	records, err := sqlite.NewProgressRepository(db).ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestImportDB_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	_, db := newStore(t)

	broken := &Snapshot{
		Courses: []catalog.Course{{ID: "c1", IsPublished: true}},
		Modules: []catalog.Module{{ID: "m1", CourseID: "c1"}},
		Lessons: []catalog.Lesson{{ID: "l1", ModuleID: "m1"}, {ID: "l1", ModuleID: "m1"}},
	}
	sum, err := ImportDB(ctx, db, broken)
	require.ErrorIs(t, err, repository.ErrConflict)
	require.Equal(t, Summary{}, sum)

	repo := sqlite.NewCatalogRepository(db)
	courses, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	require.Empty(t, courses)
	lessons, err := repo.ListLessons(ctx)
	require.NoError(t, err)
	require.Empty(t, lessons)

	fixed := &Snapshot{
		Courses: broken.Courses,
		Modules: broken.Modules,
		Lessons: []catalog.Lesson{{ID: "l1", ModuleID: "m1"}, {ID: "l2", ModuleID: "m1"}},
	}
	sum, err = ImportDB(ctx, db, fixed)
	require.NoError(t, err)
	require.Equal(t, Summary{Courses: 1, Modules: 1, Lessons: 2}, sum)
}

func TestImport_StopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	snap := &Snapshot{Courses: []catalog.Course{{ID: "c1"}, {ID: "c1"}, {ID: "c2"}}}
	sum, err := Import(ctx, store, snap)
	require.True(t, errors.Is(err, repository.ErrConflict))
	require.Equal(t, 1, sum.Courses)
}
