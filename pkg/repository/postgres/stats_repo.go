package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository implements stats.Repository.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *StatsRepository) CountScores(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM readiness_scores`).Scan(&n)
	return n, err
}

func (r *StatsRepository) AverageScore(ctx context.Context) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(AVG(score), 0)::float8 FROM readiness_scores`).Scan(&avg)
	return avg, err
}
