package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UseCase interface {
	Scenarios() []Scenario
	Scenario(id string) (Scenario, error)
	Questions(scenarioID string) ([]Question, error)
	Submit(ctx context.Context, userID uuid.UUID, sub Submission) (Grade, error)
	Results(ctx context.Context, userID uuid.UUID) ([]Result, error)
}

type service struct {
	scenarios []Scenario
	results   ResultRepository
	now       func() time.Time
}

func NewService(scenarios []Scenario, results ResultRepository) UseCase {
	return &service{scenarios: scenarios, results: results, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Scenarios() []Scenario { return s.scenarios }

func (s *service) Scenario(id string) (Scenario, error) {
	for _, sc := range s.scenarios {
		if sc.ID == id {
			return sc, nil
		}
	}
	return Scenario{}, ErrScenarioNotFound
}

func (s *service) Questions(scenarioID string) ([]Question, error) {
	sc, err := s.Scenario(scenarioID)
	if err != nil {
		return nil, err
	}
	if len(sc.Questions) == 0 {
		return nil, ErrQuestionsNotFound
	}
	return sc.Questions, nil
}

func (s *service) Submit(ctx context.Context, userID uuid.UUID, sub Submission) (Grade, error) {
	sc, err := s.Scenario(sub.ScenarioID)
	if err != nil {
		return Grade{}, err
	}
	if len(sc.Questions) == 0 {
		return Grade{}, ErrScenarioNotFound
	}
	g := GradeSubmission(sc.Questions, sub.Answers, sub.TimeTaken)
	rec := Result{
		ID:             uuid.New(),
		UserID:         userID,
		ScenarioID:     sc.ID,
		Score:          g.Score,
		TotalPoints:    g.TotalPoints,
		Percentage:     g.Percentage,
		CorrectAnswers: g.CorrectAnswers,
		TotalQuestions: g.TotalQuestions,
		TimeTaken:      g.TimeTaken,
		CompletedAt:    s.now(),
	}
	if err := s.results.Insert(ctx, rec); err != nil {
		return Grade{}, fmt.Errorf("save simulator result: %w", err)
	}
	return g, nil
}

func (s *service) Results(ctx context.Context, userID uuid.UUID) ([]Result, error) {
	return s.results.ListByUser(ctx, userID)
}
