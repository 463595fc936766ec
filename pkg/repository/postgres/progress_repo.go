package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/skilllens/pkg/learning"
)

// ProgressRepository stores one row per (user, module).
type ProgressRepository struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

func (r *ProgressRepository) Upsert(ctx context.Context, p learning.Progress) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO learning_progress (user_id, module_id, progress, completed, time_spent, last_accessed)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, module_id) DO UPDATE
SET progress = EXCLUDED.progress, completed = EXCLUDED.completed,
	time_spent = EXCLUDED.time_spent, last_accessed = EXCLUDED.last_accessed
`, p.UserID, p.ModuleID, p.Progress, p.Completed, p.TimeSpent, p.LastAccessed)
	return err
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]learning.Progress, error) {
	rows, err := r.pool.Query(ctx, `
SELECT user_id, module_id, progress, completed, time_spent, last_accessed
FROM learning_progress WHERE user_id = $1
ORDER BY last_accessed DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []learning.Progress{}
	for rows.Next() {
		var p learning.Progress
		var accessed time.Time
		if err := rows.Scan(&p.UserID, &p.ModuleID, &p.Progress, &p.Completed, &p.TimeSpent, &accessed); err != nil {
			return nil, err
		}
		p.LastAccessed = accessed.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}
