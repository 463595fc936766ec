package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/skilllens/pkg/roadmap"
)

// RoadmapRepository stores roadmap summaries.
type RoadmapRepository struct {
	pool *pgxpool.Pool
}

func NewRoadmapRepository(pool *pgxpool.Pool) *RoadmapRepository {
	return &RoadmapRepository{pool: pool}
}

const roadmapColumns = `id, user_id, roadmap_id, career_path, current_level, target_level, total_weeks, created_at`

func (r *RoadmapRepository) Upsert(ctx context.Context, s roadmap.Summary) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO career_roadmaps (`+roadmapColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, roadmap_id) DO UPDATE
SET career_path = EXCLUDED.career_path, current_level = EXCLUDED.current_level,
	target_level = EXCLUDED.target_level, total_weeks = EXCLUDED.total_weeks, created_at = EXCLUDED.created_at
`, s.ID, s.UserID, s.RoadmapID, s.CareerPath, s.CurrentLevel, s.TargetLevel, s.TotalWeeks, s.CreatedAt)
	return err
}

func (r *RoadmapRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]roadmap.Summary, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+roadmapColumns+`
FROM career_roadmaps WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []roadmap.Summary{}
	for rows.Next() {
		s, err := scanRoadmap(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *RoadmapRepository) GetForUser(ctx context.Context, userID uuid.UUID, roadmapID string) (roadmap.Summary, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+roadmapColumns+`
FROM career_roadmaps WHERE user_id = $1 AND roadmap_id = $2
`, userID, roadmapID)
	s, err := scanRoadmap(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return roadmap.Summary{}, roadmap.ErrNotFound
	}
	return s, err
}

func scanRoadmap(row pgx.Row) (roadmap.Summary, error) {
	var s roadmap.Summary
	var created time.Time
	if err := row.Scan(&s.ID, &s.UserID, &s.RoadmapID, &s.CareerPath, &s.CurrentLevel, &s.TargetLevel, &s.TotalWeeks, &created); err != nil {
		return roadmap.Summary{}, err
	}
	s.CreatedAt = created.UTC()
	return s, nil
}
