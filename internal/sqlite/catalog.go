package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/ganot/coursepulse/internal/domain/catalog"
	"github.com/ganot/coursepulse/internal/repository"
)

// CatalogRepository reads and writes courses, modules and lessons.
type CatalogRepository struct {
	db Querier
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db Querier) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CreateCourse inserts a course
func (r *CatalogRepository) CreateCourse(ctx context.Context, c catalog.Course) error {
	if strings.TrimSpace(c.ID) == "" {
		return repository.ErrInvalidInput
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (id, title, is_published) VALUES (?, ?, ?)`,
		c.ID, c.Title, c.IsPublished,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// CreateModule inserts a module. The course is not required to exist.
func (r *CatalogRepository) CreateModule(ctx context.Context, m catalog.Module) error {
	if strings.TrimSpace(m.ID) == "" || strings.TrimSpace(m.CourseID) == "" {
		return repository.ErrInvalidInput
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO modules (id, course_id) VALUES (?, ?)`,
		m.ID, m.CourseID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create module: %w", err)
	}
	return nil
}

// CreateLesson inserts a lesson. The module is not required to exist.
func (r *CatalogRepository) CreateLesson(ctx context.Context, l catalog.Lesson) error {
	if strings.TrimSpace(l.ID) == "" || strings.TrimSpace(l.ModuleID) == "" || l.DurationMinutes < 0 {
		return repository.ErrInvalidInput
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO lessons (id, module_id, is_published, duration_minutes) VALUES (?, ?, ?, ?)`,
		l.ID, l.ModuleID, l.IsPublished, l.DurationMinutes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

// ListCourses returns every course in insertion order
func (r *CatalogRepository) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, is_published FROM courses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []catalog.Course{}
	for rows.Next() {
		var c catalog.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.IsPublished); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// ListModules returns every module in insertion order
func (r *CatalogRepository) ListModules(ctx context.Context) ([]catalog.Module, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, course_id FROM modules ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	defer rows.Close()

	modules := []catalog.Module{}
	for rows.Next() {
		var m catalog.Module
		if err := rows.Scan(&m.ID, &m.CourseID); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating module rows: %w", err)
	}
	return modules, nil
}

// ListLessons returns every lesson in insertion order
func (r *CatalogRepository) ListLessons(ctx context.Context) ([]catalog.Lesson, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, module_id, is_published, duration_minutes FROM lessons ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	defer rows.Close()

	lessons := []catalog.Lesson{}
	for rows.Next() {
		var l catalog.Lesson
		if err := rows.Scan(&l.ID, &l.ModuleID, &l.IsPublished, &l.DurationMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lesson rows: %w", err)
	}
	return lessons, nil
}
