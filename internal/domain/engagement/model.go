package engagement

import "time"

// SessionRecord is one learning session.
type SessionRecord struct {
	ID              string    `json:"id,omitempty" yaml:"id,omitempty"`
	UserID          string    `json:"user_id" yaml:"user_id" validate:"required"`
	StartedAt       time.Time `json:"started_at" yaml:"started_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes" validate:"gte=0"`
}

// Bucket is one window of an engagement series. Start and End are nil for
// hour-of-day buckets.
type Bucket struct {
	Label           string     `json:"label"`
	Start           *time.Time `json:"start,omitempty"`
	End             *time.Time `json:"end,omitempty"`
	ActiveUserCount int        `json:"active_user_count"`
	SessionCount    int        `json:"session_count"`
}

// Series is an ordered set of buckets plus summary statistics.
type Series struct {
	Range               Range    `json:"range"`
	Buckets             []Bucket `json:"buckets"`
	PeakActiveUsers     int      `json:"peak_active_users"`
	AverageSessionCount float64  `json:"average_session_count"`
}
