// Package readinesstest provides an in-memory readiness.Repository for tests.
package readinesstest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/readiness"
)

type Repository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]readiness.Score
	// Err, when set, is returned by every call.
	Err error
}

func New(scores ...readiness.Score) *Repository {
	r := &Repository{byUser: map[uuid.UUID]readiness.Score{}}
	for _, s := range scores {
		r.byUser[s.UserID] = s
	}
	return r
}

func (r *Repository) Upsert(_ context.Context, s readiness.Score) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.byUser[s.UserID] = s
	return nil
}

func (r *Repository) Get(_ context.Context, userID uuid.UUID) (readiness.Score, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return readiness.Score{}, r.Err
	}
	s, ok := r.byUser[userID]
	if !ok {
		return readiness.Score{}, readiness.ErrNoScore
	}
	return s, nil
}

func (r *Repository) List(context.Context) ([]readiness.Score, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]readiness.Score, 0, len(r.byUser))
	for _, s := range r.byUser {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		}
		return out[i].UserID.String() < out[j].UserID.String()
	})
	return out, nil
}

func (r *Repository) InBand(ctx context.Context, lower, upper int, exclude uuid.UUID, limit int) ([]readiness.Score, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []readiness.Score
	for _, s := range all {
		if s.UserID == exclude || s.Score < lower || s.Score > upper {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
