package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/skilllens/pkg/simulator"
)

// SimulatorRepository appends simulator results.
type SimulatorRepository struct {
	pool *pgxpool.Pool
}

func NewSimulatorRepository(pool *pgxpool.Pool) *SimulatorRepository {
	return &SimulatorRepository{pool: pool}
}

func (r *SimulatorRepository) Insert(ctx context.Context, res simulator.Result) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO simulator_results
	(id, user_id, scenario_id, score, total_points, percentage, correct_answers, total_questions, time_taken, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, res.ID, res.UserID, res.ScenarioID, res.Score, res.TotalPoints, res.Percentage,
		res.CorrectAnswers, res.TotalQuestions, res.TimeTaken, res.CompletedAt)
	return err
}

func (r *SimulatorRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]simulator.Result, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, scenario_id, score, total_points, percentage, correct_answers, total_questions, time_taken, completed_at
FROM simulator_results WHERE user_id = $1
ORDER BY completed_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []simulator.Result{}
	for rows.Next() {
		var res simulator.Result
		var completed time.Time
		if err := rows.Scan(&res.ID, &res.UserID, &res.ScenarioID, &res.Score, &res.TotalPoints, &res.Percentage,
			&res.CorrectAnswers, &res.TotalQuestions, &res.TimeTaken, &completed); err != nil {
			return nil, err
		}
		res.CompletedAt = completed.UTC()
		out = append(out, res)
	}
	return out, rows.Err()
}
