package progress

import (
	"sort"

	"github.com/ganot/coursepulse/internal/domain/catalog"
)

// CohortEngagement ranks published courses by distinct enrolled users.
//
// A user is enrolled in a course when any of their records references one of
// its lessons, and counts as a completer when at least one of those records
// is completed. Ties are broken by ascending course id.
func CohortEngagement(idx *catalog.Index, records []Record) []CoursePopularity {
	enrolled := make(map[string]map[string]struct{})
	completed := make(map[string]map[string]struct{})

	for _, rec := range records {
		courseID, ok := idx.CourseOf(rec.LessonID)
		if !ok {
			continue
		}
		addUser(enrolled, courseID, rec.UserID)
		if rec.Status == StatusCompleted {
			addUser(completed, courseID, rec.UserID)
		}
	}

	ranked := make([]CoursePopularity, 0, len(idx.Courses()))
	for _, course := range idx.Courses() {
		if !course.IsPublished {
			continue
		}
		enrollment := len(enrolled[course.ID])
		ranked = append(ranked, CoursePopularity{
			CourseID:        course.ID,
			Title:           course.Title,
			EnrollmentCount: enrollment,
			CompletionCount: min(len(completed[course.ID]), enrollment),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].EnrollmentCount != ranked[j].EnrollmentCount {
			return ranked[i].EnrollmentCount > ranked[j].EnrollmentCount
		}
		return ranked[i].CourseID < ranked[j].CourseID
	})
	return ranked
}

func addUser(sets map[string]map[string]struct{}, courseID, userID string) {
	users, ok := sets[courseID]
	if !ok {
		users = make(map[string]struct{})
		sets[courseID] = users
	}
	users[userID] = struct{}{}
}
