package engagement

import "time"

// Aggregate buckets sessions according to the plan for r at now.
//
// The average divides by every bucket in the plan, including buckets with no
// activity. An empty session list yields an empty bucket list.
func Aggregate(r Range, now time.Time, sessions []SessionRecord) (Series, error) {
	p, err := newPlan(r, now)
	if err != nil {
		return Series{}, err
	}

	series := Series{Range: r, Buckets: []Bucket{}}
	if len(sessions) == 0 {
		return series, nil
	}

	users := make([]map[string]struct{}, len(p.buckets))
	for i := range users {
		users[i] = make(map[string]struct{})
	}

	total := 0
	for _, sess := range sessions {
		i, ok := p.assign(sess.StartedAt)
		if !ok {
			continue
		}
		p.buckets[i].SessionCount++
		users[i][sess.UserID] = struct{}{}
		total++
	}

	for i := range p.buckets {
		p.buckets[i].ActiveUserCount = len(users[i])
		series.PeakActiveUsers = max(series.PeakActiveUsers, p.buckets[i].ActiveUserCount)
	}
	series.Buckets = p.buckets
	series.AverageSessionCount = float64(total) / float64(len(p.buckets))
	return series, nil
}
