package progress_test

import (
	"testing"

	"github.com/ganot/coursepulse/internal/domain/catalog"
	"github.com/ganot/coursepulse/internal/domain/progress"
	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T, courses []catalog.Course, modules []catalog.Module, lessons []catalog.Lesson) *catalog.Index {
	t.Helper()
	idx, err := catalog.BuildIndex(courses, modules, lessons)
	require.NoError(t, err)
	return idx
}

func twoLessonCourse(t *testing.T) *catalog.Index {
	return buildIndex(t,
		[]catalog.Course{{ID: "C1", Title: "Intro", IsPublished: true}},
		[]catalog.Module{{ID: "M1", CourseID: "C1"}},
		[]catalog.Lesson{
			{ID: "L1", ModuleID: "M1", IsPublished: true},
			{ID: "L2", ModuleID: "M1", IsPublished: true},
		},
	)
}

func TestPersonalProgress_HalfComplete(t *testing.T) {
	idx := twoLessonCourse(t)
	learner := progress.ForLearner("u1", []progress.Record{
		{UserID: "u1", LessonID: "L1", Status: progress.StatusCompleted},
		{UserID: "u1", LessonID: "L2", Status: progress.StatusInProgress},
	})

	report := progress.PersonalProgress(idx, learner)
	require.Equal(t, progress.CourseProgress{CompletedCount: 1, TotalCount: 2, ProgressPercent: 50}, report.For("C1"))
	require.False(t, report.For("C1").Complete())
}

func TestPersonalProgress_Complete(t *testing.T) {
	idx := twoLessonCourse(t)
	learner := progress.ForLearner("u1", []progress.Record{
		{UserID: "u1", LessonID: "L1", Status: progress.StatusCompleted},
		{UserID: "u1", LessonID: "L2", Status: progress.StatusCompleted},
	})

	got := progress.PersonalProgress(idx, learner).For("C1")
	require.Equal(t, 100, got.ProgressPercent)
	require.True(t, got.Complete())
}

func TestPersonalProgress_RoundsPercent(t *testing.T) {
	idx := buildIndex(t,
		[]catalog.Course{{ID: "C1", IsPublished: true}},
		[]catalog.Module{{ID: "M1", CourseID: "C1"}},
		[]catalog.Lesson{
			{ID: "L1", ModuleID: "M1", IsPublished: true},
			{ID: "L2", ModuleID: "M1", IsPublished: true},
			{ID: "L3", ModuleID: "M1", IsPublished: true},
		},
	)

	one := progress.PersonalProgress(idx, progress.ForLearner("u1", []progress.Record{
		{UserID: "u1", LessonID: "L1", Status: progress.StatusCompleted},
	}))
	require.Equal(t, 33, one.For("C1").ProgressPercent)

	two := progress.PersonalProgress(idx, progress.ForLearner("u1", []progress.Record{
		{UserID: "u1", LessonID: "L1", Status: progress.StatusCompleted},
		{UserID: "u1", LessonID: "L2", Status: progress.StatusCompleted},
	}))
	require.Equal(t, 67, two.For("C1").ProgressPercent)
}

func TestPersonalProgress_IgnoresStaleAndForeignRecords(t *testing.T) {
	idx := buildIndex(t,
		[]catalog.Course{{ID: "C1", IsPublished: true}},
		[]catalog.Module{{ID: "M1", CourseID: "C1"}},
		[]catalog.Lesson{
			{ID: "L1", ModuleID: "M1", IsPublished: true},
			{ID: "L2", ModuleID: "M1", IsPublished: false},
		},
	)

	learner := progress.LearnerRecords{
		UserID: "u1",
		Records: []progress.Record{
			{UserID: "u1", LessonID: "L1", Status: progress.StatusCompleted},
			// unpublished after the learner completed it
			{UserID: "u1", LessonID: "L2", Status: progress.StatusCompleted},
			{UserID: "u1", LessonID: "deleted", Status: progress.StatusCompleted},
			{UserID: "u2", LessonID: "L1", Status: progress.StatusCompleted},
		},
	}

	got := progress.PersonalProgress(idx, learner).For("C1")
	require.Equal(t, progress.CourseProgress{CompletedCount: 1, TotalCount: 1, ProgressPercent: 100}, got)
}

func TestPersonalProgress_CourseWithoutLessons(t *testing.T) {
	idx := buildIndex(t, []catalog.Course{{ID: "empty", IsPublished: true}}, nil, nil)

	report := progress.PersonalProgress(idx, progress.ForLearner("u1", nil))
	require.Equal(t, progress.CourseProgress{}, report.For("empty"))
	require.Equal(t, progress.CourseProgress{}, report.For("unknown"))
	require.False(t, report.For("empty").Complete())
}

func TestPersonalProgress_EmptyInput(t *testing.T) {
	idx := buildIndex(t, nil, nil, nil)
	require.Empty(t, progress.PersonalProgress(idx, progress.ForLearner("u1", nil)))
}

func TestPersonalProgress_ClampAndIdempotence(t *testing.T) {
	idx := buildIndex(t,
		[]catalog.Course{{ID: "A", IsPublished: true}, {ID: "B", IsPublished: true}},
		[]catalog.Module{{ID: "ma", CourseID: "A"}, {ID: "mb", CourseID: "B"}, {ID: "orphan", CourseID: "Z"}},
		[]catalog.Lesson{
			{ID: "a1", ModuleID: "ma", IsPublished: true},
			{ID: "a2", ModuleID: "ma", IsPublished: false},
			{ID: "b1", ModuleID: "mb", IsPublished: true},
			{ID: "z1", ModuleID: "orphan", IsPublished: true},
		},
	)
	var records []progress.Record
	for _, lesson := range []string{"a1", "a1", "a2", "b1", "z1", "nope"} {
		records = append(records, progress.Record{UserID: "u1", LessonID: lesson, Status: progress.StatusCompleted})
	}
	learner := progress.ForLearner("u1", records)

	first := progress.PersonalProgress(idx, learner)
	for courseID, p := range first {
		require.LessOrEqual(t, p.CompletedCount, p.TotalCount, courseID)
	}
	require.Equal(t, first, progress.PersonalProgress(idx, learner))
}

func TestForLearner_FiltersByUser(t *testing.T) {
	learner := progress.ForLearner("u2", []progress.Record{
		{UserID: "u1", LessonID: "L1"},
		{UserID: "u2", LessonID: "L2"},
	})
	require.Equal(t, "u2", learner.UserID)
	require.Equal(t, []progress.Record{{UserID: "u2", LessonID: "L2"}}, learner.Records)
}
