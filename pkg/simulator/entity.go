package simulator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrScenarioNotFound  = errors.New("scenario not found")
	ErrQuestionsNotFound = errors.New("questions not found for this scenario")
)

type Scenario struct {
	ID             string     `yaml:"scenario_id" json:"scenario_id"`
	Title          string     `yaml:"title" json:"title"`
	Description    string     `yaml:"description" json:"description"`
	Difficulty     string     `yaml:"difficulty" json:"difficulty"`
	Category       string     `yaml:"category" json:"category"`
	TimeLimit      int        `yaml:"time_limit" json:"time_limit"`
	TotalQuestions int        `yaml:"total_questions" json:"total_questions"`
	Questions      []Question `yaml:"questions" json:"-"`
}

// Question is a bank entry. CorrectAnswer never leaves the server.
type Question struct {
	ID            string   `yaml:"question_id" json:"question_id"`
	Text          string   `yaml:"question_text" json:"question_text"`
	Type          string   `yaml:"question_type" json:"question_type"`
	Options       []string `yaml:"options" json:"options,omitempty"`
	CorrectAnswer string   `yaml:"correct_answer" json:"-"`
	Points        int      `yaml:"points" json:"points"`
	Hint          string   `yaml:"hint" json:"hint,omitempty"`
}

type Answer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

type Submission struct {
	ScenarioID string   `json:"scenario_id" validate:"required"`
	Answers    []Answer `json:"answers" validate:"dive"`
	// TimeTaken is in seconds.
	TimeTaken int `json:"time_taken" validate:"gte=0"`
}

type Feedback struct {
	QuestionID    string `json:"question_id"`
	Correct       bool   `json:"correct"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
	PointsEarned  int    `json:"points_earned"`
}

type Grade struct {
	Score          int        `json:"score"`
	TotalPoints    int        `json:"total_points"`
	Percentage     float64    `json:"percentage"`
	CorrectAnswers int        `json:"correct_answers"`
	TotalQuestions int        `json:"total_questions"`
	TimeTaken      int        `json:"time_taken"`
	Feedback       []Feedback `json:"feedback"`
	Strengths      []string   `json:"strengths"`
	Improvements   []string   `json:"improvements"`
}

// Result is the persisted, append-only record of one submission.
type Result struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ScenarioID     string    `json:"scenario_id"`
	Score          int       `json:"score"`
	TotalPoints    int       `json:"total_points"`
	Percentage     float64   `json:"percentage"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	TimeTaken      int       `json:"time_taken"`
	CompletedAt    time.Time `json:"completed_at"`
}

type ResultRepository interface {
	Insert(ctx context.Context, r Result) error
	// ListByUser returns newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Result, error)
}
