package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/logger"
	"github.com/artem13815/skilllens/pkg/simulator"
)

type SimulatorHandler struct {
	svc simulator.UseCase
	log *logger.Logger
}

func NewSimulatorHandler(svc simulator.UseCase, log *logger.Logger) *SimulatorHandler {
	return &SimulatorHandler{svc: svc, log: log}
}

// Scenarios godoc
// @Summary Workplace scenarios
// @Tags    simulator
// @Produce json
// @Success 200 {array} simulator.Scenario
// @Router  /simulator/scenarios [get]
func (h *SimulatorHandler) Scenarios(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.svc.Scenarios())
}

// Scenario godoc
// @Summary One scenario
// @Tags    simulator
// @Produce json
// @Param   id path string true "scenario id"
// @Success 200 {object} simulator.Scenario
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /simulator/scenarios/{id} [get]
func (h *SimulatorHandler) Scenario(c *fiber.Ctx) error {
	sc, err := h.svc.Scenario(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, sc)
}

// Questions godoc
// @Summary Scenario questions without answers
// @Tags    simulator
// @Produce json
// @Param   id path string true "scenario id"
// @Success 200 {array} simulator.Question
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /simulator/scenarios/{id}/questions [get]
func (h *SimulatorHandler) Questions(c *fiber.Ctx) error {
	qs, err := h.svc.Questions(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, qs)
}

// Submit godoc
// @Summary Grade a scenario attempt
// @Tags    simulator
// @Accept  json
// @Produce json
// @Param   payload body simulator.Submission true "answers"
// @Security BearerAuth
// @Success 200 {object} simulator.Grade
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /simulator/submit [post]
func (h *SimulatorHandler) Submit(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var sub simulator.Submission
	if ok, err := bind(c, &sub); !ok {
		return err
	}
	grade, err := h.svc.Submit(c.UserContext(), userID, sub)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, grade)
}

// Results godoc
// @Summary Caller's past attempts, newest first
// @Tags    simulator
// @Produce json
// @Security BearerAuth
// @Success 200 {array} simulator.Result
// @Router  /simulator/results [get]
func (h *SimulatorHandler) Results(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	results, err := h.svc.Results(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, results)
}
