package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Len(t, c.Lexicon.Categories, 7)
	assert.Len(t, c.Lexicon.Skills(), 59)
	assert.Equal(t, "python", c.Lexicon.Skills()[0])
	assert.Equal(t, "programming", c.Lexicon.CategoryOf("c++"))
	assert.Equal(t, "soft", c.Lexicon.CategoryOf("scrum"))

	require.Len(t, c.Badges, 5)
	assert.Equal(t, "first_upload", c.Badges[0].ID)
	assert.Equal(t, "<=", c.Badges[4].Operator)

	require.Len(t, c.Scenarios, 5)
	assert.Len(t, c.Scenarios[0].Questions, 8)
	assert.Len(t, c.Scenarios[1].Questions, 6)
	assert.Empty(t, c.Scenarios[2].Questions)
	assert.Equal(t, "Time Management", c.Scenarios[4].Category)

	total := 0
	for _, q := range c.Scenarios[0].Questions {
		total += q.Points
	}
	assert.Equal(t, 100, total)

	require.Len(t, c.Modules, 8)
	assert.Equal(t, []string{"dsa_basics", "database_basics"}, c.Modules[3].Prerequisites)

	require.Len(t, c.Paths, 6)
	assert.Equal(t, []string{"frontend", "backend", "fullstack", "data_science", "devops", "mobile"}, c.Paths.IDs())
	fe, ok := c.Paths.Find("frontend")
	require.True(t, ok)
	assert.Len(t, fe.Templates, 2)
	weeks := 0
	for _, p := range fe.Templates[0].Phases {
		weeks += p.Weeks
	}
	assert.Equal(t, 22, weeks)
}

func TestLoadOverridesSingleFile(t *testing.T) {
	dir := t.TempDir()
	custom := "categories:\n  - name: lang\n    skills: [go, zig]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, skillsFile), []byte(custom), 0o600))

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "zig"}, c.Lexicon.Skills())
	assert.Len(t, c.Badges, 5)
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	bad := "badges:\n  - id: x\n    metric: vibes\n  - id: x\n    metric: score\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, badgesFile), []byte(bad), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric")
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, modulesFile), []byte("modules: [\n"), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse modules.yaml")
}

func TestLoadRequiresFrontendFallbackTemplate(t *testing.T) {
	dir := t.TempDir()
	careers := `paths:
  - path_id: frontend
    name: "Frontend Developer"
    levels:
      - {name: beginner, skills: [html]}
      - {name: intermediate, skills: [react]}
      - {name: advanced, skills: [next.js]}
    templates:
      - from: intermediate
        to: advanced
        phases:
          - {title: "Next.js", weeks: 5, skills: [next.js]}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, careersFile), []byte(careers), 0o600))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontend beginner_to_intermediate template is required")
}
