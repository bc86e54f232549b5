package progress

import (
	"math"

	"github.com/ganot/coursepulse/internal/domain/catalog"
)

// PersonalProgress computes a learner's completion of every indexed course.
// Records not owned by learner.UserID are ignored.
func PersonalProgress(idx *catalog.Index, learner LearnerRecords) Report {
	completed := make(map[string]struct{})
	for _, rec := range learner.Records {
		if rec.UserID != learner.UserID || rec.Status != StatusCompleted {
			continue
		}
		completed[rec.LessonID] = struct{}{}
	}

	report := make(Report)
	for _, course := range idx.Courses() {
		lessons := idx.Lessons(course.ID)
		done := 0
		for _, id := range lessons {
			if _, ok := completed[id]; ok {
				done++
			}
		}
		report[course.ID] = newCourseProgress(done, len(lessons))
	}
	return report
}

func newCourseProgress(completed, total int) CourseProgress {
	// A stale completion must never push the count past the current total.
	completed = min(completed, total)
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return CourseProgress{
		CompletedCount:  completed,
		TotalCount:      total,
		ProgressPercent: percent,
	}
}
