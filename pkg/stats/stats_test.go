package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skilllens/pkg/readiness"
	"github.com/artem13815/skilllens/pkg/readiness/readinesstest"
)

func TestProgressFor(t *testing.T) {
	cases := []struct {
		score    int
		next     int
		progress float64
	}{
		{score: 0, next: 30, progress: 0},
		{score: 15, next: 30, progress: 50},
		{score: 30, next: 50, progress: 60},
		{score: 40, next: 50, progress: 50},
		{score: 55, next: 70, progress: 25},
		{score: 64, next: 70, progress: 70},
		{score: 89, next: 90, progress: 95},
		{score: 90, next: 100, progress: 100},
		{score: 98, next: 100, progress: 100},
	}
	for _, tc := range cases {
		p := ProgressFor(tc.score, 3)
		assert.Equal(t, tc.next, p.NextMilestone, "score %d", tc.score)
		assert.Equal(t, tc.progress, p.ProgressToNextLevel, "score %d", tc.score)
		assert.Equal(t, 3, p.SkillsCount)
	}
}

func TestProgressWithoutScore(t *testing.T) {
	svc := NewService(fakeRepo{}, readinesstest.New())
	p, err := svc.Progress(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, Progress{NextMilestone: 30}, p)
}

func TestProgressWithScore(t *testing.T) {
	id := uuid.New()
	svc := NewService(fakeRepo{}, readinesstest.New(readiness.Score{UserID: id, Score: 64, SkillsCount: 3}))
	p, err := svc.Progress(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 64, p.CurrentScore)
	assert.Equal(t, 70, p.NextMilestone)
}

type fakeRepo struct {
	users, scores int
	avg           float64
	err           error
}

func (f fakeRepo) CountUsers(context.Context) (int, error) { return f.users, f.err }
func (f fakeRepo) CountScores(context.Context) (int, error) { return f.scores, f.err }
func (f fakeRepo) AverageScore(context.Context) (float64, error) { return f.avg, f.err }

func TestOverview(t *testing.T) {
	svc := NewService(fakeRepo{users: 4, scores: 3, avg: 61.3333333}, readinesstest.New())
	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, o.TotalUsers)
	assert.Equal(t, 3, o.TotalResumes)
	assert.Equal(t, 61.33, o.AverageScore)
	assert.False(t, o.Timestamp.IsZero())
}

func TestOverviewWrapsErrors(t *testing.T) {
	svc := NewService(fakeRepo{err: errors.New("boom")}, readinesstest.New())
	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count users")
}
