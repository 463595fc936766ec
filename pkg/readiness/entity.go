package readiness

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoScore is returned when a user has not uploaded a résumé yet.
var ErrNoScore = errors.New("no readiness score")

// Score is the per-user readiness record, overwritten on every upload.
type Score struct {
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	Score       int       `json:"score"`
	SkillsCount int       `json:"skills_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Repository stores readiness scores.
type Repository interface {
	Upsert(ctx context.Context, s Score) error
	// Get returns ErrNoScore when the user has no record.
	Get(ctx context.Context, userID uuid.UUID) (Score, error)
	// List returns every score ordered by score desc, then updated_at asc, then user id.
	List(ctx context.Context) ([]Score, error)
	// InBand returns scores within [lower, upper] excluding one user, best first.
	InBand(ctx context.Context, lower, upper int, exclude uuid.UUID, limit int) ([]Score, error)
}

// Clamp keeps a score inside [0, 100].
func Clamp(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}
