package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/nlp"
	"github.com/artem13815/skilllens/pkg/readiness"
)

// Milestones are the score levels progress is measured against.
var Milestones = []int{30, 50, 70, 90, 100}

type Overview struct {
	TotalUsers   int       `json:"total_users"`
	TotalResumes int       `json:"total_resumes"`
	AverageScore float64   `json:"average_score"`
	Timestamp    time.Time `json:"timestamp"`
}

type Progress struct {
	CurrentScore        int     `json:"current_score"`
	SkillsCount         int     `json:"skills_count"`
	ProgressToNextLevel float64 `json:"progress_to_next_level"`
	NextMilestone       int     `json:"next_milestone"`
}

// Repository aggregates platform-wide counters.
type Repository interface {
	CountUsers(ctx context.Context) (int, error)
	CountScores(ctx context.Context) (int, error)
	// AverageScore returns 0 when there are no scores.
	AverageScore(ctx context.Context) (float64, error)
}

// ProgressFor computes milestone progress for a score record.
func ProgressFor(score, skills int) Progress {
	next := 100
	for _, m := range Milestones {
		if m > score {
			next = m
			break
		}
	}
	p := Progress{CurrentScore: score, SkillsCount: skills, NextMilestone: next}
	if next == 100 {
		p.ProgressToNextLevel = 100
		return p
	}
	prev := 0
	for _, m := range Milestones {
		if m < score && m > prev {
			prev = m
		}
	}
	p.ProgressToNextLevel = nlp.Round2(float64(score-prev) / float64(next-prev) * 100)
	return p
}

// NoProgress is returned to users without a score record.
func NoProgress() Progress {
	return Progress{NextMilestone: Milestones[0]}
}

type UseCase interface {
	Overview(ctx context.Context) (Overview, error)
	Progress(ctx context.Context, userID uuid.UUID) (Progress, error)
}

type service struct {
	repo   Repository
	scores readiness.Repository
	now    func() time.Time
}

func NewService(repo Repository, scores readiness.Repository) UseCase {
	return &service{repo: repo, scores: scores, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Overview(ctx context.Context) (Overview, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count users: %w", err)
	}
	resumes, err := s.repo.CountScores(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count scores: %w", err)
	}
	avg, err := s.repo.AverageScore(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("average score: %w", err)
	}
	return Overview{
		TotalUsers:   users,
		TotalResumes: resumes,
		AverageScore: nlp.Round2(avg),
		Timestamp:    s.now(),
	}, nil
}

func (s *service) Progress(ctx context.Context, userID uuid.UUID) (Progress, error) {
	sc, err := s.scores.Get(ctx, userID)
	if errors.Is(err, readiness.ErrNoScore) {
		return NoProgress(), nil
	}
	if err != nil {
		return Progress{}, err
	}
	return ProgressFor(sc.Score, sc.SkillsCount), nil
}
