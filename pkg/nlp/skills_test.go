package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testLexicon = Lexicon{Categories: []Category{
	{Name: "programming", Skills: []string{"python", "java", "javascript", "c++", "go"}},
	{Name: "database", Skills: []string{"sql", "postgresql"}},
	{Name: "cloud", Skills: []string{"docker", "kubernetes"}},
}}

func TestMatchCoversWholeLexicon(t *testing.T) {
	texts := []string{
		"",
		"Python developer with Docker and SQL",
		"JAVASCRIPT, C++, Kubernetes; PostgreSQL",
		"nothing relevant here",
	}
	for _, text := range texts {
		res := Match(text, testLexicon)

		union := map[string]int{}
		for _, s := range res.FoundSkills {
			union[s]++
		}
		for _, s := range res.MissingSkills {
			union[s]++
		}
		for _, s := range testLexicon.Skills() {
			assert.Equal(t, 1, union[s], "skill %q in %q must be in exactly one list", s, text)
		}
		assert.Len(t, union, len(testLexicon.Skills()))
		assert.Equal(t, len(res.FoundSkills), res.SkillCount)
		assert.Equal(t, 9, res.TotalSkills)
	}
}

func TestMatchIsSubstringBased(t *testing.T) {
	res := Match("Senior JavaScript engineer", testLexicon)
	// "java" sits inside "javascript"; no word boundary is applied.
	assert.Equal(t, []string{"java", "javascript"}, res.FoundSkills)
}

func TestMatchKeepsLexiconOrderAndPercentage(t *testing.T) {
	res := Match("docker sql python", testLexicon)
	assert.Equal(t, []string{"python", "sql", "docker"}, res.FoundSkills)
	assert.Equal(t, 33.33, res.Percentage)
}

func TestMatchFindsSymbolSkills(t *testing.T) {
	res := Match("C++ and golang", testLexicon)
	assert.Contains(t, res.FoundSkills, "c++")
	assert.Contains(t, res.FoundSkills, "go")
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, "cloud", testLexicon.CategoryOf("docker"))
	assert.Equal(t, "", testLexicon.CategoryOf("cobol"))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 5.08, Round2(5.084745762711864))
	assert.Equal(t, 66.67, Round2(200.0/3))
}
