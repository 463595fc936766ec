package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/learning"
	"github.com/artem13815/skilllens/pkg/logger"
)

type LearningHandler struct {
	svc learning.UseCase
	log *logger.Logger
}

func NewLearningHandler(svc learning.UseCase, log *logger.Logger) *LearningHandler {
	return &LearningHandler{svc: svc, log: log}
}

// Modules godoc
// @Summary Learning modules
// @Tags    learning
// @Produce json
// @Success 200 {array} learning.Module
// @Router  /learning/modules [get]
func (h *LearningHandler) Modules(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.svc.Modules())
}

// Module godoc
// @Summary One learning module
// @Tags    learning
// @Produce json
// @Param   id path string true "module id"
// @Success 200 {object} learning.Module
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /learning/modules/{id} [get]
func (h *LearningHandler) Module(c *fiber.Ctx) error {
	m, err := h.svc.Module(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, m)
}

// Recommendations godoc
// @Summary Modules recommended for the caller's score
// @Tags    learning
// @Produce json
// @Security BearerAuth
// @Success 200 {array} learning.Recommendation
// @Router  /learning/recommendations [get]
func (h *LearningHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	recs, err := h.svc.Recommendations(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, recs)
}

// UpdateProgress accepts a JSON body or, for older clients, query parameters.
// @Summary Record module progress
// @Tags    learning
// @Accept  json
// @Produce json
// @Param   payload body learning.ProgressUpdate false "progress"
// @Security BearerAuth
// @Success 200 {object} learning.Progress
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /learning/progress [post]
func (h *LearningHandler) UpdateProgress(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var upd learning.ProgressUpdate
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&upd); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	} else if err := c.QueryParser(&upd); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	if ok, err := check(c, &upd); !ok {
		return err
	}
	p, err := h.svc.UpdateProgress(c.UserContext(), userID, upd)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Progress godoc
// @Summary Caller's module progress
// @Tags    learning
// @Produce json
// @Security BearerAuth
// @Success 200 {array} learning.Progress
// @Router  /learning/progress [get]
func (h *LearningHandler) Progress(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	rows, err := h.svc.Progress(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, rows)
}

// StudyPlan godoc
// @Summary Weekly plan over recommended modules
// @Tags    learning
// @Produce json
// @Param   weeks query int false "plan length (default 4, max 52)"
// @Security BearerAuth
// @Success 200 {array} learning.WeekPlan
// @Router  /learning/study-plan [get]
func (h *LearningHandler) StudyPlan(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	plan, err := h.svc.StudyPlan(c.UserContext(), userID, c.QueryInt("weeks", 0))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, plan)
}
