package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/pkg/health"
)

const readyTimeout = time.Second

// HealthHandler reports whether SkillLens can serve uploads and scores.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// readinessReport is the /ready body. Failing lists the dependencies
// whose check did not return "ok", sorted by name.
type readinessReport struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Checks    map[string]string `json:"checks"`
	Failing   []string          `json:"failing,omitempty"`
	CheckedAt time.Time         `json:"checked_at"`
}

// Health: the process is up.
// @Summary Liveness check
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "service": "skilllens"})
}

// Ready: résumé storage (Postgres) and the leaderboard cache (Redis) answer.
// @Summary Readiness check
// @Tags    health
// @Produce json
// @Success 200 {object} handlers.readinessReport
// @Failure 503 {object} handlers.readinessReport
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	rep := readinessReport{
		Status:    "ready",
		Service:   "skilllens",
		Checks:    h.svc.Report(ctx),
		CheckedAt: time.Now().UTC(),
	}
	for name, state := range rep.Checks {
		if state != "ok" {
			rep.Failing = append(rep.Failing, name)
		}
	}
	if len(rep.Failing) == 0 {
		return c.Status(fiber.StatusOK).JSON(rep)
	}
	sort.Strings(rep.Failing)
	rep.Status = "degraded"
	return c.Status(fiber.StatusServiceUnavailable).JSON(rep)
}
