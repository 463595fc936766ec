package roadmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/learning"
	"github.com/artem13815/skilllens/pkg/readiness"
)

const DefaultStudyWeeks = 12

// Recommender is the subset of learning.UseCase the study plan needs.
type Recommender interface {
	Recommendations(ctx context.Context, userID uuid.UUID) ([]learning.Recommendation, error)
}

type UseCase interface {
	Generate(ctx context.Context, userID uuid.UUID, req Request) (Roadmap, error)
	Paths() []PathInfo
	MyRoadmaps(ctx context.Context, userID uuid.UUID) ([]Summary, error)
	StudyPlan(ctx context.Context, userID uuid.UUID, roadmapID string, weeks int) ([]WeekPlan, error)
}

type service struct {
	catalog Catalog
	repo    Repository
	scores  readiness.Repository
	recs    Recommender
	now     func() time.Time
}

func NewService(catalog Catalog, repo Repository, scores readiness.Repository, recs Recommender) UseCase {
	return &service{catalog: catalog, repo: repo, scores: scores, recs: recs, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Paths() []PathInfo { return s.catalog.Infos() }

func (s *service) Generate(ctx context.Context, userID uuid.UUID, req Request) (Roadmap, error) {
	path, err := s.catalog.CheckRequest(req)
	if err != nil {
		return Roadmap{}, err
	}
	if _, err := s.scores.Get(ctx, userID); err != nil {
		return Roadmap{}, err
	}

	now := s.now()
	r := s.catalog.Assemble(path, req, userID.String(), now)
	err = s.repo.Upsert(ctx, Summary{
		ID:           uuid.New(),
		UserID:       userID,
		RoadmapID:    r.RoadmapID,
		CareerPath:   path.ID,
		CurrentLevel: req.CurrentLevel,
		TargetLevel:  req.TargetLevel,
		TotalWeeks:   r.TotalDurationWeeks,
		CreatedAt:    now,
	})
	if err != nil {
		return Roadmap{}, fmt.Errorf("save roadmap: %w", err)
	}
	return r, nil
}

func (s *service) MyRoadmaps(ctx context.Context, userID uuid.UUID) ([]Summary, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) StudyPlan(ctx context.Context, userID uuid.UUID, roadmapID string, weeks int) ([]WeekPlan, error) {
	weeks = learning.ClampWeeks(weeks, DefaultStudyWeeks)
	sum, err := s.repo.GetForUser(ctx, userID, roadmapID)
	if err != nil {
		return nil, err
	}
	recs, err := s.recs.Recommendations(ctx, userID)
	if err != nil && !errors.Is(err, readiness.ErrNoScore) {
		return nil, err
	}
	modules := make([]string, 0, len(recs))
	for _, r := range recs {
		modules = append(modules, r.ModuleID)
	}
	return EnhancedStudyPlan(weeks, s.focusAreas(sum.CareerPath), modules), nil
}

func (s *service) focusAreas(pathID string) []string {
	if p, ok := s.catalog.Find(pathID); ok && len(p.FocusAreas) > 0 {
		return p.FocusAreas
	}
	if p, ok := s.catalog.Find(fallbackPath); ok {
		return p.FocusAreas
	}
	return nil
}
