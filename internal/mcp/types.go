package mcp

import (
	"time"

	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/domain/progress"
)

type GetLearnerProgressParams struct {
	UserID string `json:"user_id" jsonschema:"learner whose per-course completion is reported" validate:"required"`
}

type GetCoursePopularityParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of courses to return, 0 for all" validate:"gte=0,lte=1000"`
}

type GetEngagementSeriesParams struct {
	Range string `json:"range" jsonschema:"time range: 24h, 7d, 30d or 90d" validate:"required"`
	Now   string `json:"now,omitempty" jsonschema:"RFC 3339 reference instant, defaults to the server clock"`
}

type CourseProgressEntry struct {
	CourseID        string `json:"course_id"`
	CompletedCount  int    `json:"completed_count"`
	TotalCount      int    `json:"total_count"`
	ProgressPercent int    `json:"progress_percent"`
	Complete        bool   `json:"complete"`
}

type LearnerProgressResponse struct {
	UserID  string                `json:"user_id"`
	Courses []CourseProgressEntry `json:"courses"`
}

type CoursePopularityResponse struct {
	Courses []progress.CoursePopularity `json:"courses"`
}

type BucketEntry struct {
	Label           string `json:"label"`
	Start           string `json:"start,omitempty"`
	End             string `json:"end,omitempty"`
	ActiveUserCount int    `json:"active_user_count"`
	SessionCount    int    `json:"session_count"`
}

type EngagementSeriesResponse struct {
	Range               string        `json:"range"`
	Buckets             []BucketEntry `json:"buckets"`
	PeakActiveUsers     int           `json:"peak_active_users"`
	AverageSessionCount float64       `json:"average_session_count"`
}

func newEngagementSeriesResponse(s engagement.Series) EngagementSeriesResponse {
	resp := EngagementSeriesResponse{
		Range:               string(s.Range),
		Buckets:             make([]BucketEntry, 0, len(s.Buckets)),
		PeakActiveUsers:     s.PeakActiveUsers,
		AverageSessionCount: s.AverageSessionCount,
	}
	for _, b := range s.Buckets {
		resp.Buckets = append(resp.Buckets, BucketEntry{
			Label:           b.Label,
			Start:           formatTime(b.Start),
			End:             formatTime(b.End),
			ActiveUserCount: b.ActiveUserCount,
			SessionCount:    b.SessionCount,
		})
	}
	return resp
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
