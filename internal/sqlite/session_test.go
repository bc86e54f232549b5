package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateListBetween(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	base := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	old := &engagement.SessionRecord{UserID: "u1", StartedAt: base.Add(-48 * time.Hour), DurationMinutes: 5}
	recent := &engagement.SessionRecord{UserID: "u2", StartedAt: base.Add(-time.Hour), DurationMinutes: 25}
	edge := &engagement.SessionRecord{ID: "fixed", UserID: "u3", StartedAt: base.Add(-24 * time.Hour)}

	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))
	require.NoError(t, repo.Create(ctx, edge))
	require.NotEmpty(t, old.ID)
	require.Equal(t, "fixed", edge.ID)

	sessions, err := repo.ListBetween(ctx, base.Add(-24*time.Hour), base)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "u3", sessions[0].UserID)
	require.Equal(t, "u2", sessions[1].UserID)
	require.Equal(t, 25, sessions[1].DurationMinutes)
	require.True(t, recent.StartedAt.Equal(sessions[1].StartedAt))
}

func TestSessionRepository_Errors(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	require.Equal(t, repository.ErrInvalidInput, repo.Create(ctx, &engagement.SessionRecord{UserID: "u1"}))
	require.Equal(t, repository.ErrInvalidInput, repo.Create(ctx, nil))

	sess := &engagement.SessionRecord{ID: "s1", UserID: "u1", StartedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, sess))
	dup := &engagement.SessionRecord{ID: "s1", UserID: "u1", StartedAt: time.Now()}
	require.Equal(t, repository.ErrConflict, repo.Create(ctx, dup))

	empty, err := repo.ListBetween(ctx, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestSessionRepository_ListBetweenExcludesUpperBound(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	until := time.Date(2026, 10, 14, 12, 0, 0, 500, time.UTC)
	require.NoError(t, repo.Create(ctx, &engagement.SessionRecord{ID: "before", UserID: "u1", StartedAt: until.Add(-time.Second)}))
	require.NoError(t, repo.Create(ctx, &engagement.SessionRecord{ID: "same-second", UserID: "u1", StartedAt: until.Truncate(time.Second)}))
	require.NoError(t, repo.Create(ctx, &engagement.SessionRecord{ID: "after", UserID: "u1", StartedAt: until.Add(time.Second)}))

	sessions, err := repo.ListBetween(ctx, until.Add(-time.Hour), until)
	require.NoError(t, err)
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	require.Equal(t, []string{"before", "same-second"}, ids)
}

// A past reference instant must not pick up sessions recorded after it.
func TestSessionRepository_DaySeriesIgnoresLaterSessions(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewSessionRepository(db)

	now := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	for _, sess := range []engagement.SessionRecord{
		{UserID: "u1", StartedAt: now.Add(-2 * time.Hour)},
		{UserID: "u2", StartedAt: now.AddDate(0, 3, 0).Add(-2 * time.Hour)},
		{UserID: "u3", StartedAt: now.AddDate(0, 6, 0)},
	} {
		sess := sess
		require.NoError(t, repo.Create(ctx, &sess))
	}

	series, err := engagement.NewService(repo, nil).Series(ctx, "24h", now)
	require.NoError(t, err)

	total := 0
	for _, b := range series.Buckets {
		total += b.SessionCount
	}
	require.Equal(t, 1, total)
	require.Equal(t, 1, series.Buckets[12].SessionCount)
}
