package simulator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memResults struct {
	mu   sync.Mutex
	rows []Result
	err  error
}

func (m *memResults) Insert(_ context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, r)
	return nil
}

func (m *memResults) ListByUser(_ context.Context, userID uuid.UUID) ([]Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Result
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].UserID == userID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func testScenarios() []Scenario {
	return []Scenario{
		{ID: "onboarding_tech", Title: "Tech Company Onboarding", TotalQuestions: 2, Questions: []Question{
			{ID: "onboard_1", CorrectAnswer: "Listen", Points: 10},
			{ID: "onboard_2", CorrectAnswer: "Ask", Points: 15},
		}},
		{ID: "team_conflict", Title: "Resolving Team Conflict"},
	}
}

func TestQuestionsLookup(t *testing.T) {
	svc := NewService(testScenarios(), &memResults{})

	qs, err := svc.Questions("onboarding_tech")
	require.NoError(t, err)
	assert.Len(t, qs, 2)

	_, err = svc.Questions("team_conflict")
	assert.ErrorIs(t, err, ErrQuestionsNotFound)

	_, err = svc.Questions("missing")
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestSubmitPersistsResult(t *testing.T) {
	repo := &memResults{}
	svc := NewService(testScenarios(), repo).(*service)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	user := uuid.New()

	g, err := svc.Submit(context.Background(), user, Submission{
		ScenarioID: "onboarding_tech",
		Answers:    []Answer{{"onboard_1", "Listen"}, {"onboard_2", "Ask"}},
		TimeTaken:  90,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, g.Score)
	assert.Equal(t, 100.0, g.Percentage)

	results, err := svc.Results(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "onboarding_tech", results[0].ScenarioID)
	assert.Equal(t, 25, results[0].Score)
	assert.Equal(t, fixed, results[0].CompletedAt)

	other, err := svc.Results(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSubmitRejectsUnknownOrEmptyScenario(t *testing.T) {
	repo := &memResults{}
	svc := NewService(testScenarios(), repo)

	_, err := svc.Submit(context.Background(), uuid.New(), Submission{ScenarioID: "nope"})
	assert.ErrorIs(t, err, ErrScenarioNotFound)
	_, err = svc.Submit(context.Background(), uuid.New(), Submission{ScenarioID: "team_conflict"})
	assert.ErrorIs(t, err, ErrScenarioNotFound)
	assert.Empty(t, repo.rows)
}

func TestSubmitWrapsStorageError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(testScenarios(), &memResults{err: boom})

	_, err := svc.Submit(context.Background(), uuid.New(), Submission{ScenarioID: "onboarding_tech"})
	assert.ErrorIs(t, err, boom)
}
