package learning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/readiness"
)

const (
	DefaultPlanWeeks = 4
	MaxPlanWeeks     = 52
)

type UseCase interface {
	Modules() []Module
	Module(id string) (Module, error)
	Recommendations(ctx context.Context, userID uuid.UUID) ([]Recommendation, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, upd ProgressUpdate) (Progress, error)
	Progress(ctx context.Context, userID uuid.UUID) ([]Progress, error)
	StudyPlan(ctx context.Context, userID uuid.UUID, weeks int) ([]WeekPlan, error)
}

type service struct {
	modules  []Module
	scores   readiness.Repository
	progress ProgressRepository
	now      func() time.Time
}

func NewService(modules []Module, scores readiness.Repository, progress ProgressRepository) UseCase {
	return &service{modules: modules, scores: scores, progress: progress, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Modules() []Module { return s.modules }

func (s *service) Module(id string) (Module, error) {
	for _, m := range s.modules {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, ErrModuleNotFound
}

func (s *service) Recommendations(ctx context.Context, userID uuid.UUID) ([]Recommendation, error) {
	sc, err := s.scores.Get(ctx, userID)
	switch {
	case errors.Is(err, readiness.ErrNoScore):
		return Recommend(0, false), nil
	case err != nil:
		return nil, err
	}
	return Recommend(sc.Score, true), nil
}

func (s *service) UpdateProgress(ctx context.Context, userID uuid.UUID, upd ProgressUpdate) (Progress, error) {
	if _, err := s.Module(upd.ModuleID); err != nil {
		return Progress{}, err
	}
	p := Progress{
		UserID:       userID,
		ModuleID:     upd.ModuleID,
		Progress:     upd.Progress,
		Completed:    upd.Progress >= 100,
		TimeSpent:    upd.TimeSpent,
		LastAccessed: s.now(),
	}
	if err := s.progress.Upsert(ctx, p); err != nil {
		return Progress{}, fmt.Errorf("save progress: %w", err)
	}
	return p, nil
}

func (s *service) Progress(ctx context.Context, userID uuid.UUID) ([]Progress, error) {
	return s.progress.ListByUser(ctx, userID)
}

func (s *service) StudyPlan(ctx context.Context, userID uuid.UUID, weeks int) ([]WeekPlan, error) {
	weeks = ClampWeeks(weeks, DefaultPlanWeeks)
	recs, err := s.Recommendations(ctx, userID)
	if err != nil {
		return nil, err
	}
	return StudyPlan(recs, weeks), nil
}

// ClampWeeks replaces non-positive values with def and caps at MaxPlanWeeks.
func ClampWeeks(weeks, def int) int {
	if weeks <= 0 {
		return def
	}
	if weeks > MaxPlanWeeks {
		return MaxPlanWeeks
	}
	return weeks
}
