package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/logger"
	"github.com/artem13815/skilllens/pkg/stats"
)

type StatsHandler struct {
	svc stats.UseCase
	log *logger.Logger
}

func NewStatsHandler(svc stats.UseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: log}
}

// Overview godoc
// @Summary Platform totals
// @Tags    stats
// @Produce json
// @Success 200 {object} stats.Overview
// @Router  /stats/overview [get]
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	ov, err := h.svc.Overview(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, ov)
}

// Progress godoc
// @Summary Caller's progress to the next milestone
// @Tags    stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} stats.Progress
// @Router  /stats/progress [get]
func (h *StatsHandler) Progress(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	p, err := h.svc.Progress(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}
