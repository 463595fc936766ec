package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/badge"
	"github.com/artem13815/skilllens/pkg/logger"
)

type BadgeHandler struct {
	svc badge.UseCase
	log *logger.Logger
}

func NewBadgeHandler(svc badge.UseCase, log *logger.Logger) *BadgeHandler {
	return &BadgeHandler{svc: svc, log: log}
}

// User godoc
// @Summary Badges with the caller's earned flags
// @Tags    badges
// @Produce json
// @Security BearerAuth
// @Success 200 {array} badge.Badge
// @Router  /badges/user [get]
func (h *BadgeHandler) User(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	badges, err := h.svc.ForUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, badges)
}

// All godoc
// @Summary Badge catalog
// @Tags    badges
// @Produce json
// @Success 200 {array} badge.Badge
// @Router  /badges/all [get]
func (h *BadgeHandler) All(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.svc.All())
}
