package engagement

import (
	"fmt"
	"time"
)

// Range selects a bucket plan.
type Range string

const (
	Range24h Range = "24h"
	Range7d  Range = "7d"
	Range30d Range = "30d"
	Range90d Range = "90d"
)

// Ranges lists every supported range in display order.
var Ranges = []Range{Range24h, Range7d, Range30d, Range90d}

// ParseRange converts a token such as "7d" into a Range.
func ParseRange(token string) (Range, error) {
	r := Range(token)
	for _, known := range Ranges {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRange, token)
}

// Since returns the earliest instant a plan for r can count at now.
func (r Range) Since(now time.Time) time.Time {
	if r == Range24h {
		return now.Add(-24 * time.Hour)
	}
	p, err := newPlan(r, now)
	if err != nil || len(p.buckets) == 0 {
		return now
	}
	return *p.buckets[0].Start
}

// Until returns the instant a plan for r stops counting at now, exclusive.
// Together with Since it bounds the fetch: 24h covers [now-24h, now), the
// windowed ranges end at the end of today.
func (r Range) Until(now time.Time) time.Time {
	if r == Range24h {
		return now
	}
	p, err := newPlan(r, now)
	if err != nil || len(p.buckets) == 0 {
		return now
	}
	return *p.buckets[len(p.buckets)-1].End
}

// windowed plans: count fixed-width windows of width days ending at the end
// of today.
var windows = map[Range]struct {
	count int
	width int
	label func(i int, start time.Time) string
}{
	Range7d: {count: 7, width: 1, label: func(_ int, start time.Time) string {
		return start.Weekday().String()[:3]
	}},
	Range30d: {count: 4, width: 7, label: func(i int, _ time.Time) string {
		return fmt.Sprintf("Week %d", i+1)
	}},
	Range90d: {count: 3, width: 30, label: func(i int, _ time.Time) string {
		return fmt.Sprintf("Month %d", i+1)
	}},
}

type plan struct {
	buckets []Bucket
	assign  func(t time.Time) (int, bool)
}

func newPlan(r Range, now time.Time) (plan, error) {
	if r == Range24h {
		return hourOfDayPlan(now.Location()), nil
	}
	w, ok := windows[r]
	if !ok {
		return plan{}, fmt.Errorf("%w: %q", ErrInvalidRange, string(r))
	}

	loc := now.Location()
	y, m, d := now.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, loc).AddDate(0, 0, 1)

	buckets := make([]Bucket, w.count)
	for i := range buckets {
		start := end.AddDate(0, 0, -(w.count-i)*w.width)
		stop := start.AddDate(0, 0, w.width)
		buckets[i] = Bucket{Label: w.label(i, start), Start: &start, End: &stop}
	}

	return plan{
		buckets: buckets,
		assign: func(t time.Time) (int, bool) {
			t = t.In(loc)
			for i, b := range buckets {
				if !t.Before(*b.Start) && t.Before(*b.End) {
					return i, true
				}
			}
			return 0, false
		},
	}, nil
}

// hourOfDayPlan buckets by hour of day only; the calendar date is ignored.
func hourOfDayPlan(loc *time.Location) plan {
	buckets := make([]Bucket, 24)
	for h := range buckets {
		buckets[h] = Bucket{Label: fmt.Sprintf("%02d:00", h)}
	}
	return plan{
		buckets: buckets,
		assign: func(t time.Time) (int, bool) {
			return t.In(loc).Hour(), true
		},
	}
}
