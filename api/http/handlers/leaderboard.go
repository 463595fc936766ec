package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/leaderboard"
	"github.com/artem13815/skilllens/pkg/logger"
)

type LeaderboardHandler struct {
	svc leaderboard.UseCase
	log *logger.Logger
}

func NewLeaderboardHandler(svc leaderboard.UseCase, log *logger.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc, log: log}
}

// Top godoc
// @Summary Leaderboard
// @Tags    leaderboard
// @Produce json
// @Param   limit query int false "entries to return (default 50, max 200)"
// @Success 200 {array} leaderboard.Entry
// @Router  /leaderboard [get]
func (h *LeaderboardHandler) Top(c *fiber.Ctx) error {
	entries, err := h.svc.Top(c.UserContext(), pageFrom(c, leaderboard.DefaultLimit).Limit)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, entries)
}

// Rank godoc
// @Summary Caller's leaderboard position
// @Tags    leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} leaderboard.Position
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /leaderboard/rank [get]
func (h *LeaderboardHandler) Rank(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	pos, err := h.svc.Position(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, pos)
}

// Peers godoc
// @Summary Users with a similar score
// @Tags    peers
// @Produce json
// @Param   limit query int false "peers to return (default 10)"
// @Security BearerAuth
// @Success 200 {array} leaderboard.Peer
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /peers [get]
func (h *LeaderboardHandler) Peers(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	peers, err := h.svc.Peers(c.UserContext(), userID, pageFrom(c, leaderboard.DefaultPeerLimit).Limit)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, peers)
}

// Compare godoc
// @Summary Compare the caller with a peer
// @Tags    peers
// @Produce json
// @Param   peer_id path string true "peer user id"
// @Security BearerAuth
// @Success 200 {object} leaderboard.Comparison
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /peers/compare/{peer_id} [get]
func (h *LeaderboardHandler) Compare(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	peerID, err := uuid.Parse(c.Params("peer_id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid peer id")
	}
	cmp, err := h.svc.Compare(c.UserContext(), userID, peerID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, cmp)
}
