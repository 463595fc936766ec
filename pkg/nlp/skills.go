package nlp

import "math"

// Category groups lexicon skills, e.g. "programming" or "cloud".
type Category struct {
	Name   string   `yaml:"name" json:"name"`
	Skills []string `yaml:"skills" json:"skills"`
}

// Lexicon is the ordered list of recognised skill keywords.
type Lexicon struct {
	Categories []Category `yaml:"categories" json:"categories"`
}

// Skills flattens the lexicon in category order.
func (l Lexicon) Skills() []string {
	var out []string
	for _, c := range l.Categories {
		out = append(out, c.Skills...)
	}
	return out
}

// CategoryOf returns the category of skill, or "" when it is not in the lexicon.
func (l Lexicon) CategoryOf(skill string) string {
	for _, c := range l.Categories {
		for _, s := range c.Skills {
			if s == skill {
				return c.Name
			}
		}
	}
	return ""
}

// SkillAnalysis is the outcome of matching a text against the lexicon.
type SkillAnalysis struct {
	FoundSkills   []string `json:"found_skills"`
	MissingSkills []string `json:"missing_skills"`
	SkillCount    int      `json:"skill_count"`
	TotalSkills   int      `json:"total_skills"`
	Percentage    float64  `json:"percentage"`
}

// Match splits the lexicon into found and missing skills for text.
// Both lists keep lexicon order and together cover the whole lexicon.
func Match(text string, lex Lexicon) SkillAnalysis {
	lowered := Lower(text)
	all := lex.Skills()
	found := make([]string, 0, len(all))
	missing := make([]string, 0, len(all))
	for _, skill := range all {
		if ContainsKeyword(lowered, skill) {
			found = append(found, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	var pct float64
	if len(all) > 0 {
		pct = Round2(float64(len(found)) / float64(len(all)) * 100)
	}
	return SkillAnalysis{
		FoundSkills:   found,
		MissingSkills: missing,
		SkillCount:    len(found),
		TotalSkills:   len(all),
		Percentage:    pct,
	}
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
