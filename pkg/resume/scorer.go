package resume

import (
	"strings"

	"github.com/artem13815/skilllens/pkg/nlp"
)

const (
	baseScore      = 40
	pointsPerSkill = 8
	maxScore       = 98
	maxSuggestions = 5
)

// Analysis is the scoring result returned to the client.
type Analysis struct {
	Score         int               `json:"score"`
	SkillsCount   int               `json:"skills_count"`
	SkillAnalysis nlp.SkillAnalysis `json:"skill_analysis"`
	Suggestions   []string          `json:"suggestions"`
}

// ScoreFor maps the number of found skills to a readiness score:
// min(98, 40 + 8*found).
func ScoreFor(found int) int {
	if found < 0 {
		found = 0
	}
	s := baseScore + pointsPerSkill*found
	if s > maxScore {
		return maxScore
	}
	return s
}

// Evaluate matches text against the lexicon, scores it and builds suggestions.
func Evaluate(text string, lex nlp.Lexicon) Analysis {
	sa := nlp.Match(text, lex)
	score := ScoreFor(sa.SkillCount)
	return Analysis{
		Score:         score,
		SkillsCount:   sa.SkillCount,
		SkillAnalysis: sa,
		Suggestions:   Suggestions(score, text),
	}
}

// Suggestions returns at most five improvement hints.
func Suggestions(score int, text string) []string {
	lowered := strings.ToLower(text)
	out := make([]string, 0, 8)
	if score < 30 {
		out = append(out,
			"Consider adding more technical skills to your resume",
			"Include specific programming languages and frameworks")
	}
	if score < 50 {
		out = append(out,
			"Highlight your project experience and achievements",
			"Add measurable results and impact of your work")
	}
	if score < 70 {
		out = append(out,
			"Add relevant certifications and coursework",
			"Include industry-standard tools and technologies")
	}
	if !strings.Contains(lowered, "leadership") {
		out = append(out, "Showcase leadership and teamwork experiences")
	}
	if !strings.Contains(lowered, "project") {
		out = append(out, "Detail your project work and contributions")
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
