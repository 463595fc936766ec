package roadmap

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	fallbackPath = "frontend"
	fallbackFrom = "beginner"
	fallbackTo   = "intermediate"
)

// Catalog is the set of known career paths in display order.
type Catalog []CareerPath

func (c Catalog) Find(id string) (CareerPath, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return CareerPath{}, false
}

func (c Catalog) IDs() []string {
	out := make([]string, 0, len(c))
	for _, p := range c {
		out = append(out, p.ID)
	}
	return out
}

func (c Catalog) Infos() []PathInfo {
	out := make([]PathInfo, 0, len(c))
	for _, p := range c {
		out = append(out, PathInfo{PathID: p.ID, Name: p.Name, Description: p.Description, Levels: p.LevelNames()})
	}
	return out
}

// CheckRequest validates the path and levels without touching storage.
func (c Catalog) CheckRequest(req Request) (CareerPath, error) {
	path, ok := c.Find(req.CareerPath)
	if !ok {
		return CareerPath{}, &InvalidPathError{Valid: c.IDs()}
	}
	for _, lvl := range []string{req.CurrentLevel, req.TargetLevel} {
		if _, ok := path.level(lvl); !ok {
			return CareerPath{}, fmt.Errorf("%w %q, choose from: %s", ErrInvalidLevel, lvl, strings.Join(path.LevelNames(), ", "))
		}
	}
	return path, nil
}

// Assemble builds a roadmap for a validated request. A missing template for
// the level pair falls back to the frontend beginner to intermediate one and
// the result says so.
func (c Catalog) Assemble(path CareerPath, req Request, userID string, now time.Time) Roadmap {
	current, _ := path.level(req.CurrentLevel)
	target, _ := path.level(req.TargetLevel)

	r := Roadmap{
		RoadmapID:    RoadmapID(req, userID),
		CareerPath:   path.Name,
		CurrentLevel: capitalize(req.CurrentLevel),
		TargetLevel:  capitalize(req.TargetLevel),
		SkillGaps:    difference(target.Skills, current.Skills),
		Strengths:    append([]string{}, current.Skills...),
	}

	tpl, ok := path.template(req.CurrentLevel, req.TargetLevel)
	if !ok {
		if fb, found := c.Find(fallbackPath); found {
			tpl, _ = fb.template(fallbackFrom, fallbackTo)
		}
		r.TemplateFallback = true
		r.Warning = fmt.Sprintf("no %s template for %s to %s, showing %s %s to %s instead",
			path.ID, req.CurrentLevel, req.TargetLevel, fallbackPath, fallbackFrom, fallbackTo)
	}

	r.Phases = make([]Phase, 0, len(tpl))
	for i, pt := range tpl {
		r.TotalDurationWeeks += pt.Weeks
		r.Phases = append(r.Phases, buildPhase(i+1, pt))
	}
	r.EstimatedCompletionDate = now.UTC().AddDate(0, 0, 7*r.TotalDurationWeeks).Format("2006-01-02")
	r.DifficultyLevel = difficulty(req.CurrentLevel, req.TargetLevel)
	return r
}

func buildPhase(n int, pt PhaseTemplate) Phase {
	head := pt.Skills
	if len(head) > 3 {
		head = head[:3]
	}
	return Phase{
		PhaseNumber:   n,
		Title:         pt.Title,
		DurationWeeks: pt.Weeks,
		Description:   fmt.Sprintf("Master %s and more", strings.Join(head, ", ")),
		SkillsToLearn: pt.Skills,
		Resources:     pt.Resources,
		Projects:      pt.Projects,
		Milestones: []string{
			fmt.Sprintf("Complete %d projects", len(pt.Projects)),
			fmt.Sprintf("Master %d new skills", len(pt.Skills)),
			"Pass skill assessment",
		},
	}
}

func RoadmapID(req Request, userID string) string {
	prefix := userID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("%s_%s_to_%s_%s", req.CareerPath, req.CurrentLevel, req.TargetLevel, prefix)
}

func difficulty(current, target string) string {
	switch {
	case current == "beginner":
		return "Beginner"
	case target == "intermediate":
		return "Intermediate"
	default:
		return "Advanced"
	}
}

// difference keeps the order of want.
func difference(want, have []string) []string {
	seen := make(map[string]struct{}, len(have))
	for _, s := range have {
		seen[s] = struct{}{}
	}
	out := []string{}
	for _, s := range want {
		if _, ok := seen[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
