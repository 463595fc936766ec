package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("roadmap not found")
	ErrInvalidLevel = errors.New("invalid level")
)

// InvalidPathError lists the career paths a caller may choose from.
type InvalidPathError struct {
	Valid []string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid career path, choose from: %s", strings.Join(e.Valid, ", "))
}

// ErrInvalidCareerPath matches any *InvalidPathError via errors.Is.
var ErrInvalidCareerPath = &InvalidPathError{}

func (e *InvalidPathError) Is(target error) bool {
	_, ok := target.(*InvalidPathError)
	return ok
}

type Resource struct {
	Type string `yaml:"type" json:"type"`
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type PhaseTemplate struct {
	Title     string     `yaml:"title"`
	Weeks     int        `yaml:"weeks"`
	Skills    []string   `yaml:"skills"`
	Projects  []string   `yaml:"projects"`
	Resources []Resource `yaml:"resources"`
}

type Level struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

type Template struct {
	From   string          `yaml:"from"`
	To     string          `yaml:"to"`
	Phases []PhaseTemplate `yaml:"phases"`
}

type CareerPath struct {
	ID          string     `yaml:"path_id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Levels      []Level    `yaml:"levels"`
	Templates   []Template `yaml:"templates"`
	FocusAreas  []string   `yaml:"focus_areas"`
}

func (p CareerPath) LevelNames() []string {
	out := make([]string, 0, len(p.Levels))
	for _, l := range p.Levels {
		out = append(out, l.Name)
	}
	return out
}

func (p CareerPath) level(name string) (Level, bool) {
	for _, l := range p.Levels {
		if l.Name == name {
			return l, true
		}
	}
	return Level{}, false
}

func (p CareerPath) template(from, to string) ([]PhaseTemplate, bool) {
	for _, t := range p.Templates {
		if t.From == from && t.To == to {
			return t.Phases, true
		}
	}
	return nil, false
}

type PathInfo struct {
	PathID      string   `json:"path_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Levels      []string `json:"levels"`
}

// Request is checked by Catalog.CheckRequest, path first, so an unknown or
// missing path always answers with the valid path list.
type Request struct {
	CareerPath   string `json:"career_path"`
	CurrentLevel string `json:"current_level"`
	TargetLevel  string `json:"target_level"`
}

type Phase struct {
	PhaseNumber   int        `json:"phase_number"`
	Title         string     `json:"title"`
	DurationWeeks int        `json:"duration_weeks"`
	Description   string     `json:"description"`
	SkillsToLearn []string   `json:"skills_to_learn"`
	Resources     []Resource `json:"resources"`
	Projects      []string   `json:"projects"`
	Milestones    []string   `json:"milestones"`
}

type Roadmap struct {
	RoadmapID               string   `json:"roadmap_id"`
	CareerPath              string   `json:"career_path"`
	CurrentLevel            string   `json:"current_level"`
	TargetLevel             string   `json:"target_level"`
	TotalDurationWeeks      int      `json:"total_duration_weeks"`
	Phases                  []Phase  `json:"phases"`
	SkillGaps               []string `json:"skill_gaps"`
	Strengths               []string `json:"strengths"`
	EstimatedCompletionDate string   `json:"estimated_completion_date"`
	DifficultyLevel         string   `json:"difficulty_level"`
	TemplateFallback        bool     `json:"template_fallback"`
	Warning                 string   `json:"warning,omitempty"`
}

// Summary is what gets persisted; phases are rebuilt from the catalog.
type Summary struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RoadmapID    string    `json:"roadmap_id"`
	CareerPath   string    `json:"career_path"`
	CurrentLevel string    `json:"current_level"`
	TargetLevel  string    `json:"target_level"`
	TotalWeeks   int       `json:"total_weeks"`
	CreatedAt    time.Time `json:"created_at"`
}

type DaySchedule struct {
	Morning   string   `json:"morning"`
	Afternoon string   `json:"afternoon"`
	Tasks     []string `json:"tasks"`
	Duration  float64  `json:"duration"`
}

type WeekPlan struct {
	WeekNumber     int                    `json:"week_number"`
	Phase          string                 `json:"phase"`
	FocusArea      string                 `json:"focus_area"`
	Modules        []string               `json:"modules"`
	DailySchedule  map[string]DaySchedule `json:"daily_schedule"`
	EstimatedHours float64                `json:"estimated_hours"`
	Goals          []string               `json:"goals"`
	Assessments    []string               `json:"assessments"`
}

type Repository interface {
	// Upsert keys on (user_id, roadmap_id).
	Upsert(ctx context.Context, s Summary) error
	// ListByUser returns newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Summary, error)
	// GetForUser returns ErrNotFound when the roadmap is missing or owned by someone else.
	GetForUser(ctx context.Context, userID uuid.UUID, roadmapID string) (Summary, error)
}
