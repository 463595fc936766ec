package learning

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrModuleNotFound = errors.New("module not found")

type Module struct {
	ID            string   `yaml:"module_id" json:"module_id"`
	Title         string   `yaml:"title" json:"title"`
	Description   string   `yaml:"description" json:"description"`
	Category      string   `yaml:"category" json:"category"`
	Difficulty    string   `yaml:"difficulty" json:"difficulty"`
	Duration      int      `yaml:"duration" json:"duration"`
	Prerequisites []string `yaml:"prerequisites" json:"prerequisites"`
	SkillsCovered []string `yaml:"skills_covered" json:"skills_covered"`
}

type Recommendation struct {
	ModuleID        string `json:"module_id"`
	Title           string `json:"title"`
	Reason          string `json:"reason"`
	Priority        string `json:"priority"`
	EstimatedImpact int    `json:"estimated_impact"`
}

// Progress is one (user, module) row; Completed is derived from Progress.
type Progress struct {
	UserID       uuid.UUID `json:"-"`
	ModuleID     string    `json:"module_id"`
	Progress     float64   `json:"progress"`
	Completed    bool      `json:"completed"`
	TimeSpent    int       `json:"time_spent"`
	LastAccessed time.Time `json:"last_accessed"`
}

type ProgressUpdate struct {
	ModuleID  string  `json:"module_id" query:"module_id" validate:"required"`
	Progress  float64 `json:"progress" query:"progress" validate:"gte=0,lte=100"`
	TimeSpent int     `json:"time_spent" query:"time_spent" validate:"gte=0"`
}

type WeekPlan struct {
	WeekNumber     int                 `json:"week_number"`
	Modules        []string            `json:"modules"`
	DailyTasks     map[string][]string `json:"daily_tasks"`
	EstimatedHours int                 `json:"estimated_hours"`
}

type ProgressRepository interface {
	Upsert(ctx context.Context, p Progress) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Progress, error)
}
