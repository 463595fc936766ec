package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/readiness"
)

const rankedCacheKey = "skilllens:leaderboard:ranked"

// Cache is the subset of the Redis store the leaderboard needs.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) bool
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string) error
}

type UseCase interface {
	Top(ctx context.Context, limit int) ([]Entry, error)
	Position(ctx context.Context, userID uuid.UUID) (Position, error)
	// RankOf returns readiness.ErrNoScore when the user is not ranked.
	RankOf(ctx context.Context, userID uuid.UUID) (rank, total int, err error)
	Peers(ctx context.Context, userID uuid.UUID, limit int) ([]Peer, error)
	Compare(ctx context.Context, userID, peerID uuid.UUID) (Comparison, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	scores readiness.Repository
	cache  Cache
	ttl    time.Duration
}

// NewService builds the leaderboard use case. cache may be nil.
func NewService(scores readiness.Repository, cache Cache, ttl time.Duration) UseCase {
	return &service{scores: scores, cache: cache, ttl: ttl}
}

func (s *service) ranked(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if s.cache != nil && s.cache.GetJSON(ctx, rankedCacheKey, &entries) {
		return entries, nil
	}
	all, err := s.scores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	entries = Rank(all)
	if s.cache != nil && s.ttl > 0 {
		s.cache.SetJSON(ctx, rankedCacheKey, entries, s.ttl)
	}
	return entries, nil
}

func (s *service) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	entries, err := s.ranked(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *service) Position(ctx context.Context, userID uuid.UUID) (Position, error) {
	entries, err := s.ranked(ctx)
	if err != nil {
		return Position{}, err
	}
	pos, ok := PositionOf(entries, userID)
	if !ok {
		return Position{}, readiness.ErrNoScore
	}
	return pos, nil
}

func (s *service) RankOf(ctx context.Context, userID uuid.UUID) (int, int, error) {
	pos, err := s.Position(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return pos.Rank, pos.Total, nil
}

func (s *service) Peers(ctx context.Context, userID uuid.UUID, limit int) ([]Peer, error) {
	if limit <= 0 {
		limit = DefaultPeerLimit
	}
	self, err := s.scores.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	lower, upper := Band(self.Score)
	candidates, err := s.scores.InBand(ctx, lower, upper, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list peers: %w", err)
	}
	return Peers(candidates, userID, self.Score, limit), nil
}

func (s *service) Compare(ctx context.Context, userID, peerID uuid.UUID) (Comparison, error) {
	user, err := s.scores.Get(ctx, userID)
	if err != nil {
		return Comparison{}, err
	}
	peer, err := s.scores.Get(ctx, peerID)
	if err != nil {
		return Comparison{}, err
	}
	return Compare(user, peer), nil
}

func (s *service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, rankedCacheKey)
}
