package catalog

// Course is a top-level unit of content.
type Course struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Title       string `json:"title" yaml:"title"`
	IsPublished bool   `json:"is_published" yaml:"is_published"`
}

// Module groups lessons inside exactly one course.
type Module struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	CourseID string `json:"course_id" yaml:"course_id" validate:"required"`
}

// Lesson belongs to exactly one module.
type Lesson struct {
	ID              string `json:"id" yaml:"id" validate:"required"`
	ModuleID        string `json:"module_id" yaml:"module_id" validate:"required"`
	IsPublished     bool   `json:"is_published" yaml:"is_published"`
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes" validate:"gte=0"`
}

// EntityKind names the catalog entity an error refers to.
type EntityKind string

const (
	KindCourse EntityKind = "course"
	KindModule EntityKind = "module"
	KindLesson EntityKind = "lesson"
)
