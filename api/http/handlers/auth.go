package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/auth"
	"github.com/artem13815/skilllens/pkg/logger"
	"github.com/artem13815/skilllens/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
	log     *logger.Logger
}

func NewAuthHandler(useCase auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	FullName string `json:"full_name" validate:"required"`
}

// Signup handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "registration payload"
// @Success 201 {object} auth.AuthResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	result, err := h.useCase.Register(c.UserContext(), req.Email, req.Password, req.FullName)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info("user registered", "user_id", result.User.ID.String())
	return presenter.JSON(c, http.StatusCreated, result)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} auth.AuthResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if ok, err := bind(c, &req); !ok {
		return err
	}
	result, err := h.useCase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, result)
}

// Logout revokes the presented token.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	tokenID, exp := jwt.Token(c)
	if err := h.useCase.Logout(c.UserContext(), auth.Session{UserID: userID, TokenID: tokenID, ExpiresAt: exp}); err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.Message(c, http.StatusOK, "logged out")
}

// Me returns the caller's profile with score summary.
// @Summary Current user profile
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Profile
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	profile, err := h.useCase.Profile(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, profile)
}
