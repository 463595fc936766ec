package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/skilllens/pkg/readiness"
)

// ReadinessRepository implements readiness.Repository.
type ReadinessRepository struct {
	pool *pgxpool.Pool
}

func NewReadinessRepository(pool *pgxpool.Pool) *ReadinessRepository {
	return &ReadinessRepository{pool: pool}
}

const selectScores = `
SELECT s.user_id, COALESCE(u.full_name, ''), s.score, s.skills_count, s.updated_at
FROM readiness_scores s
LEFT JOIN users u ON u.id = s.user_id
`

func (r *ReadinessRepository) Upsert(ctx context.Context, s readiness.Score) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO readiness_scores (user_id, score, skills_count, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET score = EXCLUDED.score, skills_count = EXCLUDED.skills_count, updated_at = EXCLUDED.updated_at
`, s.UserID, s.Score, s.SkillsCount, s.UpdatedAt)
	return err
}

func (r *ReadinessRepository) Get(ctx context.Context, userID uuid.UUID) (readiness.Score, error) {
	row := r.pool.QueryRow(ctx, selectScores+`WHERE s.user_id = $1`, userID)
	s, err := scanScore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return readiness.Score{}, readiness.ErrNoScore
	}
	return s, err
}

func (r *ReadinessRepository) List(ctx context.Context) ([]readiness.Score, error) {
	rows, err := r.pool.Query(ctx, selectScores+`ORDER BY s.score DESC, s.updated_at ASC, s.user_id`)
	if err != nil {
		return nil, err
	}
	return collectScores(rows)
}

func (r *ReadinessRepository) InBand(ctx context.Context, lower, upper int, exclude uuid.UUID, limit int) ([]readiness.Score, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, selectScores+`
WHERE s.score BETWEEN $1 AND $2 AND s.user_id <> $3
ORDER BY s.score DESC, s.updated_at ASC, s.user_id
LIMIT $4`, lower, upper, exclude, limit)
	if err != nil {
		return nil, err
	}
	return collectScores(rows)
}

func scanScore(row pgx.Row) (readiness.Score, error) {
	var s readiness.Score
	var updated time.Time
	if err := row.Scan(&s.UserID, &s.FullName, &s.Score, &s.SkillsCount, &updated); err != nil {
		return readiness.Score{}, err
	}
	s.UpdatedAt = updated.UTC()
	return s, nil
}

func collectScores(rows pgx.Rows) ([]readiness.Score, error) {
	defer rows.Close()
	var out []readiness.Score
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
