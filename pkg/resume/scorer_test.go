package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skilllens/pkg/catalog"
)

func TestScoreForIsMonotonicAndCapped(t *testing.T) {
	prev := ScoreFor(0)
	assert.Equal(t, 40, prev)
	for n := 1; n <= 60; n++ {
		s := ScoreFor(n)
		assert.GreaterOrEqual(t, s, prev)
		assert.LessOrEqual(t, s, 98)
		prev = s
	}
	assert.Equal(t, 96, ScoreFor(7))
	assert.Equal(t, 98, ScoreFor(8))
	assert.Equal(t, 40, ScoreFor(-3))
}

func TestEvaluatePythonSQLDocker(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	res := Evaluate("Experienced with Python, SQL and Docker.", cat.Lexicon)
	assert.Equal(t, 3, res.SkillsCount)
	assert.Equal(t, 64, res.Score)
	assert.Equal(t, []string{"python", "sql", "docker"}, res.SkillAnalysis.FoundSkills)
	assert.Len(t, res.SkillAnalysis.MissingSkills, 56)
	assert.Equal(t, 59, res.SkillAnalysis.TotalSkills)
	assert.Equal(t, 5.08, res.SkillAnalysis.Percentage)
}

func TestSuggestionsThresholds(t *testing.T) {
	low := Suggestions(20, "")
	assert.Len(t, low, 5)
	assert.Equal(t, "Consider adding more technical skills to your resume", low[0])
	assert.Equal(t, "Add relevant certifications and coursework", low[4])

	mid := Suggestions(64, "led a project with strong leadership")
	assert.Equal(t, []string{
		"Add relevant certifications and coursework",
		"Include industry-standard tools and technologies",
	}, mid)

	high := Suggestions(90, "nothing here")
	assert.Equal(t, []string{
		"Showcase leadership and teamwork experiences",
		"Detail your project work and contributions",
	}, high)

	assert.Empty(t, Suggestions(98, "Leadership on every Project"))
}
