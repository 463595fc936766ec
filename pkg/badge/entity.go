package badge

// Metrics a badge criterion can test.
const (
	MetricScoreRecord = "score_record"
	MetricSkillsCount = "skills_count"
	MetricScore       = "score"
	MetricRank        = "rank"
)

// Badge is a static catalog entry. Earned is computed per request and never stored.
type Badge struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Requirement int    `yaml:"requirement" json:"requirement"`
	// Metric and Operator describe the earning rule, e.g. skills_count >= Requirement.
	Metric   string `yaml:"metric" json:"-"`
	Operator string `yaml:"operator" json:"-"`
	Earned   bool   `yaml:"-" json:"earned"`
}

// Standing is what badges are evaluated against.
type Standing struct {
	HasScore    bool
	Score       int
	SkillsCount int
	// Rank is 0 when the user is not on the leaderboard.
	Rank int
}
