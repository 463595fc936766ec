package badge

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/readiness"
)

// Ranker resolves a user's leaderboard position.
type Ranker interface {
	RankOf(ctx context.Context, userID uuid.UUID) (rank, total int, err error)
}

type UseCase interface {
	ForUser(ctx context.Context, userID uuid.UUID) ([]Badge, error)
	All() []Badge
}

type service struct {
	catalog []Badge
	scores  readiness.Repository
	ranker  Ranker
}

func NewService(catalog []Badge, scores readiness.Repository, ranker Ranker) UseCase {
	return &service{catalog: catalog, scores: scores, ranker: ranker}
}

func (s *service) ForUser(ctx context.Context, userID uuid.UUID) ([]Badge, error) {
	sc, err := s.scores.Get(ctx, userID)
	if errors.Is(err, readiness.ErrNoScore) {
		return Unearned(s.catalog), nil
	}
	if err != nil {
		return nil, err
	}
	st := Standing{HasScore: true, Score: sc.Score, SkillsCount: sc.SkillsCount}
	rank, _, err := s.ranker.RankOf(ctx, userID)
	switch {
	case err == nil:
		st.Rank = rank
	case errors.Is(err, readiness.ErrNoScore):
	default:
		return nil, err
	}
	return Evaluate(s.catalog, st), nil
}

func (s *service) All() []Badge {
	return Unearned(s.catalog)
}
