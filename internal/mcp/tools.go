package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var validate = validator.New()

// toolset holds the handlers behind every registered tool.
type toolset struct {
	services Services
	now      func() time.Time
}

func newToolset(cfg Config) *toolset {
	return &toolset{services: cfg.Services, now: cfg.Now}
}

func registerTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_learner_progress",
		Description: "Per-course completion of one learner over published lessons",
	}, ts.getLearnerProgress)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_course_popularity",
		Description: "Published courses ranked by distinct enrolled learners, with distinct completers",
	}, ts.getCoursePopularity)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_engagement_series",
		Description: "Active users and session counts bucketed over 24h, 7d, 30d or 90d",
	}, ts.getEngagementSeries)
}

func (ts *toolset) getLearnerProgress(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetLearnerProgressParams) (*sdkmcp.CallToolResult, LearnerProgressResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, LearnerProgressResponse{}, mapError(err)
	}

	report, err := ts.services.Progress.LearnerProgress(ctx, in.UserID)
	if err != nil {
		return nil, LearnerProgressResponse{}, mapError(err)
	}

	resp := LearnerProgressResponse{UserID: in.UserID, Courses: make([]CourseProgressEntry, 0, len(report))}
	for courseID, p := range report {
		resp.Courses = append(resp.Courses, CourseProgressEntry{
			CourseID:        courseID,
			CompletedCount:  p.CompletedCount,
			TotalCount:      p.TotalCount,
			ProgressPercent: p.ProgressPercent,
			Complete:        p.Complete(),
		})
	}
	sort.Slice(resp.Courses, func(i, j int) bool {
		return resp.Courses[i].CourseID < resp.Courses[j].CourseID
	})
	return nil, resp, nil
}

func (ts *toolset) getCoursePopularity(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetCoursePopularityParams) (*sdkmcp.CallToolResult, CoursePopularityResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, CoursePopularityResponse{}, mapError(err)
	}

	ranked, err := ts.services.Progress.Popularity(ctx, in.Limit)
	if err != nil {
		return nil, CoursePopularityResponse{}, mapError(err)
	}
	return nil, CoursePopularityResponse{Courses: ranked}, nil
}

func (ts *toolset) getEngagementSeries(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetEngagementSeriesParams) (*sdkmcp.CallToolResult, EngagementSeriesResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, EngagementSeriesResponse{}, mapError(err)
	}

	now := ts.now()
	if s := strings.TrimSpace(in.Now); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, EngagementSeriesResponse{}, &APIError{
				Code:         "INVALID_INPUT",
				Message:      fmt.Sprintf("now is not an RFC 3339 timestamp: %q", s),
				RecoveryHint: "Use a timestamp like 2026-10-14T15:30:00Z",
			}
		}
		now = parsed
	}

	series, err := ts.services.Engagement.Series(ctx, in.Range, now)
	if err != nil {
		return nil, EngagementSeriesResponse{}, mapError(err)
	}
	return nil, newEngagementSeriesResponse(series), nil
}
