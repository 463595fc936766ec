// Package catalog loads the static data the service is built around: the
// skill lexicon, badges, simulator scenarios, learning modules and career
// paths. Defaults are embedded; a directory may override any single file.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/artem13815/skilllens/pkg/badge"
	"github.com/artem13815/skilllens/pkg/learning"
	"github.com/artem13815/skilllens/pkg/nlp"
	"github.com/artem13815/skilllens/pkg/roadmap"
	"github.com/artem13815/skilllens/pkg/simulator"
)

//go:embed data/*.yaml
var defaults embed.FS

const (
	skillsFile    = "skills.yaml"
	badgesFile    = "badges.yaml"
	scenariosFile = "scenarios.yaml"
	modulesFile   = "modules.yaml"
	careersFile   = "careers.yaml"
)

type Catalog struct {
	Lexicon   nlp.Lexicon
	Badges    []badge.Badge
	Scenarios []simulator.Scenario
	Modules   []learning.Module
	Paths     roadmap.Catalog
}

// Load reads every catalog file from dir when present there, otherwise from
// the embedded defaults. An empty dir uses the defaults only.
func Load(dir string) (*Catalog, error) {
	var (
		c         Catalog
		badges    struct{ Badges []badge.Badge `yaml:"badges"` }
		scenarios struct{ Scenarios []simulator.Scenario `yaml:"scenarios"` }
		modules   struct{ Modules []learning.Module `yaml:"modules"` }
		careers   struct{ Paths []roadmap.CareerPath `yaml:"paths"` }
	)
	files := []struct {
		name string
		dst  any
	}{
		{skillsFile, &c.Lexicon},
		{badgesFile, &badges},
		{scenariosFile, &scenarios},
		{modulesFile, &modules},
		{careersFile, &careers},
	}
	for _, f := range files {
		data, err := read(dir, f.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(data, f.dst); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}
	c.Badges = badges.Badges
	c.Scenarios = scenarios.Scenarios
	c.Modules = modules.Modules
	c.Paths = careers.Paths

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func read(dir, name string) ([]byte, error) {
	if dir = strings.TrimSpace(dir); dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return defaults.ReadFile("data/" + name)
}

func (c *Catalog) validate() error {
	var errs []error

	if len(c.Lexicon.Skills()) == 0 {
		errs = append(errs, errors.New("skills: lexicon is empty"))
	}
	seen := map[string]bool{}
	for _, s := range c.Lexicon.Skills() {
		if s != strings.ToLower(s) {
			errs = append(errs, fmt.Errorf("skills: %q must be lower-case", s))
		}
		if seen[s] {
			errs = append(errs, fmt.Errorf("skills: duplicate %q", s))
		}
		seen[s] = true
	}

	ids := map[string]bool{}
	for _, b := range c.Badges {
		if b.ID == "" || ids[b.ID] {
			errs = append(errs, fmt.Errorf("badges: missing or duplicate id %q", b.ID))
		}
		ids[b.ID] = true
		switch b.Metric {
		case badge.MetricScoreRecord, badge.MetricSkillsCount, badge.MetricScore, badge.MetricRank:
		default:
			errs = append(errs, fmt.Errorf("badges: %s has unknown metric %q", b.ID, b.Metric))
		}
	}

	ids = map[string]bool{}
	for _, sc := range c.Scenarios {
		if sc.ID == "" || ids[sc.ID] {
			errs = append(errs, fmt.Errorf("scenarios: missing or duplicate id %q", sc.ID))
		}
		ids[sc.ID] = true
		for _, q := range sc.Questions {
			if len(q.Options) > 0 && !contains(q.Options, q.CorrectAnswer) {
				errs = append(errs, fmt.Errorf("scenarios: %s/%s correct answer is not an option", sc.ID, q.ID))
			}
			if q.Points <= 0 {
				errs = append(errs, fmt.Errorf("scenarios: %s/%s points must be positive", sc.ID, q.ID))
			}
		}
	}

	ids = map[string]bool{}
	for _, m := range c.Modules {
		if m.ID == "" || ids[m.ID] {
			errs = append(errs, fmt.Errorf("modules: missing or duplicate id %q", m.ID))
		}
		ids[m.ID] = true
	}

	ids = map[string]bool{}
	for _, p := range c.Paths {
		if p.ID == "" || ids[p.ID] {
			errs = append(errs, fmt.Errorf("careers: missing or duplicate id %q", p.ID))
		}
		ids[p.ID] = true
		levels := p.LevelNames()
		for _, t := range p.Templates {
			if !contains(levels, t.From) || !contains(levels, t.To) {
				errs = append(errs, fmt.Errorf("careers: %s template %s_to_%s uses an unknown level", p.ID, t.From, t.To))
			}
		}
	}
	if fe, ok := c.Paths.Find("frontend"); !ok {
		errs = append(errs, errors.New("careers: frontend path is required as the template fallback"))
	} else if !hasTemplate(fe.Templates, "beginner", "intermediate") {
		errs = append(errs, errors.New("careers: frontend beginner_to_intermediate template is required as the fallback"))
	}

	return errors.Join(errs...)
}

func hasTemplate(ts []roadmap.Template, from, to string) bool {
	for _, t := range ts {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
