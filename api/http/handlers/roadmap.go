package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/logger"
	"github.com/artem13815/skilllens/pkg/roadmap"
)

type RoadmapHandler struct {
	svc roadmap.UseCase
	log *logger.Logger
}

func NewRoadmapHandler(svc roadmap.UseCase, log *logger.Logger) *RoadmapHandler {
	return &RoadmapHandler{svc: svc, log: log}
}

// Generate builds a career roadmap and stores its summary for the caller.
// @Summary Generate a roadmap
// @Tags    roadmap
// @Accept  json
// @Produce json
// @Param   payload body roadmap.Request true "path and levels"
// @Security BearerAuth
// @Success 200 {object} roadmap.Roadmap
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /roadmap/generate [post]
func (h *RoadmapHandler) Generate(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req roadmap.Request
	if ok, err := bind(c, &req); !ok {
		return err
	}
	rm, err := h.svc.Generate(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if rm.TemplateFallback {
		h.log.Warn("roadmap template fallback", "path", req.CareerPath, "from", req.CurrentLevel, "to", req.TargetLevel)
	}
	return presenter.JSON(c, http.StatusOK, rm)
}

// Paths godoc
// @Summary Available career paths
// @Tags    roadmap
// @Produce json
// @Success 200 {array} roadmap.PathInfo
// @Router  /roadmap/paths [get]
func (h *RoadmapHandler) Paths(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.svc.Paths())
}

// MyRoadmaps godoc
// @Summary Caller's saved roadmaps, newest first
// @Tags    roadmap
// @Produce json
// @Security BearerAuth
// @Success 200 {array} roadmap.Summary
// @Router  /roadmap/my-roadmaps [get]
func (h *RoadmapHandler) MyRoadmaps(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	items, err := h.svc.MyRoadmaps(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// StudyPlan godoc
// @Summary Weekly schedule for a saved roadmap
// @Tags    roadmap
// @Produce json
// @Param   id    path  string true  "roadmap id"
// @Param   weeks query int    false "plan length (default 12, max 52)"
// @Security BearerAuth
// @Success 200 {array} roadmap.WeekPlan
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /roadmap/{id}/study-plan [get]
func (h *RoadmapHandler) StudyPlan(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	plan, err := h.svc.StudyPlan(c.UserContext(), userID, c.Params("id"), c.QueryInt("weeks", 0))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, plan)
}
