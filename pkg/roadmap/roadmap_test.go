package roadmap

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skilllens/pkg/learning"
	"github.com/artem13815/skilllens/pkg/readiness"
	"github.com/artem13815/skilllens/pkg/readiness/readinesstest"
)

var testCatalog = Catalog{
	{
		ID:          "frontend",
		Name:        "Frontend Developer",
		Description: "Build beautiful and responsive user interfaces",
		Levels: []Level{
			{Name: "beginner", Skills: []string{"html", "css", "javascript", "git"}},
			{Name: "intermediate", Skills: []string{"react", "typescript", "git"}},
			{Name: "advanced", Skills: []string{"next.js", "testing"}},
		},
		Templates: []Template{{From: "beginner", To: "intermediate", Phases: []PhaseTemplate{
			{Title: "HTML & CSS Fundamentals", Weeks: 4, Skills: []string{"html", "css", "flexbox", "grid"}, Projects: []string{"Personal Portfolio", "Landing Page"}},
			{Title: "React Fundamentals", Weeks: 6, Skills: []string{"react", "hooks"}, Projects: []string{"Todo App"}},
		}}},
		FocusAreas: []string{"HTML/CSS", "JavaScript", "React", "Advanced Patterns"},
	},
	{
		ID:   "devops",
		Name: "DevOps Engineer",
		Levels: []Level{
			{Name: "beginner", Skills: []string{"linux", "git"}},
			{Name: "intermediate", Skills: []string{"docker", "git"}},
		},
	},
}

type memRoadmaps struct {
	mu   sync.Mutex
	rows map[string]Summary
}

func newMemRoadmaps() *memRoadmaps { return &memRoadmaps{rows: map[string]Summary{}} }

func (m *memRoadmaps) Upsert(_ context.Context, s Summary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[s.UserID.String()+"/"+s.RoadmapID] = s
	return nil
}

func (m *memRoadmaps) ListByUser(_ context.Context, userID uuid.UUID) ([]Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Summary
	for _, s := range m.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRoadmaps) GetForUser(_ context.Context, userID uuid.UUID, roadmapID string) (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[userID.String()+"/"+roadmapID]
	if !ok {
		return Summary{}, ErrNotFound
	}
	return s, nil
}

type staticRecs []learning.Recommendation

func (r staticRecs) Recommendations(context.Context, uuid.UUID) ([]learning.Recommendation, error) {
	return r, nil
}

func TestAssembleSumsWeeksAndGaps(t *testing.T) {
	path, err := testCatalog.CheckRequest(Request{CareerPath: "frontend", CurrentLevel: "beginner", TargetLevel: "intermediate"})
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	r := testCatalog.Assemble(path, Request{CareerPath: "frontend", CurrentLevel: "beginner", TargetLevel: "intermediate"},
		"0123456789abcdef", now)

	assert.Equal(t, "frontend_beginner_to_intermediate_01234567", r.RoadmapID)
	assert.Equal(t, "Frontend Developer", r.CareerPath)
	assert.Equal(t, "Beginner", r.CurrentLevel)
	assert.Equal(t, "Intermediate", r.TargetLevel)
	assert.Equal(t, 10, r.TotalDurationWeeks)
	assert.Equal(t, "2026-05-10", r.EstimatedCompletionDate)
	assert.Equal(t, []string{"react", "typescript"}, r.SkillGaps)
	assert.Equal(t, []string{"html", "css", "javascript", "git"}, r.Strengths)
	assert.Equal(t, "Beginner", r.DifficultyLevel)
	assert.False(t, r.TemplateFallback)
	assert.Empty(t, r.Warning)

	require.Len(t, r.Phases, 2)
	assert.Equal(t, 1, r.Phases[0].PhaseNumber)
	assert.Equal(t, "Master html, css, flexbox and more", r.Phases[0].Description)
	assert.Equal(t, []string{"Complete 2 projects", "Master 4 new skills", "Pass skill assessment"}, r.Phases[0].Milestones)
	assert.Equal(t, "Master react, hooks and more", r.Phases[1].Description)
}

func TestAssembleFallsBackWithWarning(t *testing.T) {
	req := Request{CareerPath: "devops", CurrentLevel: "intermediate", TargetLevel: "beginner"}
	path, err := testCatalog.CheckRequest(req)
	require.NoError(t, err)

	r := testCatalog.Assemble(path, req, "abc", time.Now())
	assert.True(t, r.TemplateFallback)
	assert.Contains(t, r.Warning, "frontend beginner to intermediate")
	assert.Equal(t, 10, r.TotalDurationWeeks)
	assert.Equal(t, "DevOps Engineer", r.CareerPath)
	assert.Equal(t, "Advanced", r.DifficultyLevel)
	assert.Equal(t, "devops_intermediate_to_beginner_abc", r.RoadmapID)
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, "Beginner", difficulty("beginner", "expert"))
	assert.Equal(t, "Intermediate", difficulty("advanced", "intermediate"))
	assert.Equal(t, "Advanced", difficulty("intermediate", "advanced"))
}

func TestCheckRequest(t *testing.T) {
	_, err := testCatalog.CheckRequest(Request{CareerPath: "astronaut", CurrentLevel: "beginner", TargetLevel: "intermediate"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCareerPath)
	assert.Contains(t, err.Error(), "frontend, devops")

	_, err = testCatalog.CheckRequest(Request{CareerPath: "frontend", CurrentLevel: "beginner", TargetLevel: "guru"})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestGenerateValidatesPathBeforeStorage(t *testing.T) {
	scores := readinesstest.New()
	scores.Err = errors.New("storage must not be reached")
	svc := NewService(testCatalog, newMemRoadmaps(), scores, staticRecs(nil))

	_, err := svc.Generate(context.Background(), uuid.New(), Request{CareerPath: "nope", CurrentLevel: "beginner", TargetLevel: "advanced"})
	assert.ErrorIs(t, err, ErrInvalidCareerPath)
}

func TestGenerateRequiresScore(t *testing.T) {
	repo := newMemRoadmaps()
	svc := NewService(testCatalog, repo, readinesstest.New(), staticRecs(nil))

	_, err := svc.Generate(context.Background(), uuid.New(), Request{CareerPath: "frontend", CurrentLevel: "beginner", TargetLevel: "intermediate"})
	assert.ErrorIs(t, err, readiness.ErrNoScore)
	assert.Empty(t, repo.rows)
}

func TestGenerateThenStudyPlan(t *testing.T) {
	user := uuid.New()
	repo := newMemRoadmaps()
	recs := staticRecs{{ModuleID: "sql_mastery"}, {ModuleID: "react_advanced"}, {ModuleID: "docker_kubernetes"}}
	svc := NewService(testCatalog, repo, readinesstest.New(readiness.Score{UserID: user, Score: 60}), recs)
	ctx := context.Background()

	r, err := svc.Generate(ctx, user, Request{CareerPath: "frontend", CurrentLevel: "beginner", TargetLevel: "intermediate"})
	require.NoError(t, err)

	mine, err := svc.MyRoadmaps(ctx, user)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, r.RoadmapID, mine[0].RoadmapID)
	assert.Equal(t, "frontend", mine[0].CareerPath)
	assert.Equal(t, 10, mine[0].TotalWeeks)

	// Regenerating the same roadmap keeps a single summary row.
	_, err = svc.Generate(ctx, user, Request{CareerPath: "frontend", CurrentLevel: "beginner", TargetLevel: "intermediate"})
	require.NoError(t, err)
	mine, _ = svc.MyRoadmaps(ctx, user)
	assert.Len(t, mine, 1)

	plan, err := svc.StudyPlan(ctx, user, r.RoadmapID, 0)
	require.NoError(t, err)
	require.Len(t, plan, DefaultStudyWeeks)
	assert.Equal(t, []string{"sql_mastery", "react_advanced"}, plan[0].Modules)

	_, err = svc.StudyPlan(ctx, uuid.New(), r.RoadmapID, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnhancedStudyPlanPhases(t *testing.T) {
	focus := []string{"HTML/CSS", "JavaScript", "React", "Advanced Patterns"}
	plan := EnhancedStudyPlan(10, focus, []string{"a"})
	require.Len(t, plan, 10)

	// Two weeks per phase; the tail stays in the last phase.
	assert.Equal(t, "Foundation", plan[0].Phase)
	assert.Equal(t, "Foundation", plan[1].Phase)
	assert.Equal(t, "Intermediate Skills", plan[2].Phase)
	assert.Equal(t, "Real-World Projects", plan[6].Phase)
	assert.Equal(t, "Real-World Projects", plan[9].Phase)
	assert.Equal(t, "Advanced Patterns", plan[9].FocusArea)
	assert.Equal(t, "Master HTML/CSS fundamentals", plan[0].Goals[0])

	assert.Equal(t, 22.0, plan[0].EstimatedHours)
	assert.Len(t, plan[0].DailySchedule, 7)
	assert.Equal(t, 4.0, plan[0].DailySchedule["Saturday"].Duration)
	assert.Len(t, plan[0].Assessments, 3)
}

func TestEnhancedStudyPlanShortPlans(t *testing.T) {
	plan := EnhancedStudyPlan(2, []string{"A", "B", "C", "D"}, nil)
	require.Len(t, plan, 2)
	assert.Equal(t, "Foundation", plan[0].Phase)
	assert.Equal(t, "Intermediate Skills", plan[1].Phase)
	assert.Empty(t, plan[0].Modules)

	assert.Empty(t, EnhancedStudyPlan(0, nil, nil))
}
