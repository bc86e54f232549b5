package progress

import "time"

// Status is the point-in-time state of a learner on one lesson.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Record is the progress of one user on one lesson.
type Record struct {
	UserID      string     `json:"user_id" yaml:"user_id" validate:"required"`
	LessonID    string     `json:"lesson_id" yaml:"lesson_id" validate:"required"`
	Status      Status     `json:"status" yaml:"status" validate:"required,oneof=not_started in_progress completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

// LearnerRecords is the progress of exactly one user.
type LearnerRecords struct {
	UserID  string
	Records []Record
}

// ForLearner keeps only the records belonging to userID.
func ForLearner(userID string, records []Record) LearnerRecords {
	own := make([]Record, 0, len(records))
	for _, rec := range records {
		if rec.UserID == userID {
			own = append(own, rec)
		}
	}
	return LearnerRecords{UserID: userID, Records: own}
}

// CourseProgress is a learner's completion of one course.
type CourseProgress struct {
	CompletedCount  int `json:"completed_count"`
	TotalCount      int `json:"total_count"`
	ProgressPercent int `json:"progress_percent"`
}

// Complete reports whether every published lesson is completed.
func (p CourseProgress) Complete() bool {
	return p.TotalCount > 0 && p.CompletedCount == p.TotalCount
}

// Report maps course ids to a learner's progress.
type Report map[string]CourseProgress

// For returns the progress for a course, zero when the course is unknown.
func (r Report) For(courseID string) CourseProgress {
	return r[courseID]
}

// CoursePopularity is the cohort-wide engagement of one course.
type CoursePopularity struct {
	CourseID        string `json:"course_id"`
	Title           string `json:"title"`
	EnrollmentCount int    `json:"enrollment_count"`
	CompletionCount int    `json:"completion_count"`
}
