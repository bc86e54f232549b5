package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `coursepulse reports learner progress and engagement for a learning platform.

Reports (all read-only):
- get_learner_progress(user_id): completed/total published lessons per course for one learner.
- get_course_popularity(limit?): published courses ranked by distinct enrolled learners.
- get_engagement_series(range, now?): active users and sessions per bucket for 24h, 7d, 30d or 90d.

Counting rules:
- Only published lessons count. Lessons or modules whose parent course is missing are ignored.
- Completion never exceeds the total, and completers never exceed enrolled learners.

Docs:
- coursepulse://docs/index
- coursepulse://docs/progress
- coursepulse://docs/engagement
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "coursepulse://docs/index",
		Name:        "docs_index",
		Title:       "coursepulse docs index",
		Description: "What each report answers and which doc explains it.",
		Content: `# coursepulse: Docs Index

## Reports

- **Learner progress**: how far one learner is through every course. See coursepulse://docs/progress.
- **Course popularity**: which published courses have the most learners. See coursepulse://docs/progress.
- **Engagement series**: how many learners were active, bucketed in time. See coursepulse://docs/engagement.

## Errors

Tool errors carry a code:

- INVALID_INPUT: a required argument is missing or malformed.
- INVALID_RANGE: the range is not one of 24h, 7d, 30d, 90d.
- DUPLICATE_ID: the stored catalog contains two courses, modules or lessons with the same id.
`,
	},
	{
		URI:         "coursepulse://docs/progress",
		Name:        "docs_progress",
		Title:       "Progress and popularity",
		Description: "How completion ratios and popularity rankings are counted.",
		Content: `# Progress and popularity

## Catalog resolution

Each lesson belongs to a module and each module to a course. A lesson counts toward a
course only when its module resolves to an existing course and the lesson is published.
Unresolvable modules and lessons are excluded from every total.

## Learner progress

For each course:

- total_count: published lessons in the course
- completed_count: those lessons the learner has completed, never above total_count
- progress_percent: round(completed / total * 100), or 0 for a course without lessons
- complete: total_count > 0 and every lesson completed

Progress records for lessons that no longer exist are ignored.

## Course popularity

- enrollment_count: distinct learners with any progress record in the course
- completion_count: distinct learners with at least one completed lesson in the course

Only published courses are listed. Courses are ordered by enrollment_count descending,
then by course id ascending.
`,
	},
	{
		URI:         "coursepulse://docs/engagement",
		Name:        "docs_engagement",
		Title:       "Engagement series",
		Description: "Bucket layout per range and how the summary is computed.",
		Content: `# Engagement series

Buckets are computed in the time zone of the reference instant (the now argument, or the
server clock).

| Range | Buckets | Labels |
|---|---|---|
| 24h | 24 hour-of-day buckets | 00:00 .. 23:00 |
| 7d | the 7 calendar days ending today | Mon, Tue, ... |
| 30d | 4 rolling 7-day windows ending at the end of today | Week 1 .. Week 4 |
| 90d | 3 rolling 30-day windows ending at the end of today | Month 1 .. Month 3 |

The 24h range groups sessions of the last day by hour of day; its buckets have no start or end.
Window buckets are half-open: a session starting exactly at a window end belongs to the next one.

Per bucket: active_user_count counts distinct learners, session_count counts sessions.

Summary:

- peak_active_users: the highest active_user_count
- average_session_count: all sessions divided by the number of buckets, empty buckets included

With no sessions at all the series has no buckets and a zero summary.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
