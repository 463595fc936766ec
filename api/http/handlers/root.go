package handlers

import "github.com/gofiber/fiber/v2"

const Version = "2.1.0"

var features = []string{
	"Resume Analysis",
	"Career Roadmap Generation",
	"Enhanced Study Plans",
	"Leaderboard",
	"Badges",
	"Peers",
	"Day 0 Simulator",
	"Learning Modules",
}

// Root describes the service.
// @Summary Service info
// @Tags    meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router  / [get]
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "SkillLens Backend Running",
		"version":   Version,
		"features":  features,
		"docs":      "/swagger/index.html",
		"endpoints": fiber.Map{
			"roadmap_generation":  "/roadmap/generate",
			"career_paths":        "/roadmap/paths",
			"my_roadmaps":         "/roadmap/my-roadmaps",
			"enhanced_study_plan": "/roadmap/{roadmap_id}/study-plan",
		},
	})
}
