package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/auth"
	"github.com/artem13815/skilllens/pkg/learning"
	"github.com/artem13815/skilllens/pkg/logger"
	"github.com/artem13815/skilllens/pkg/readiness"
	"github.com/artem13815/skilllens/pkg/resume"
	"github.com/artem13815/skilllens/pkg/roadmap"
	"github.com/artem13815/skilllens/pkg/security/jwt"
	"github.com/artem13815/skilllens/pkg/simulator"
)

var errUnauthenticated = errors.New("unauthenticated")

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// statusFor maps domain errors to HTTP status codes; anything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrNotFound),
		errors.Is(err, readiness.ErrNoScore),
		errors.Is(err, resume.ErrNotFound),
		errors.Is(err, simulator.ErrScenarioNotFound),
		errors.Is(err, simulator.ErrQuestionsNotFound),
		errors.Is(err, learning.ErrModuleNotFound),
		errors.Is(err, roadmap.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrPasswordTooLong),
		errors.Is(err, resume.ErrUnsupportedFormat),
		errors.Is(err, resume.ErrUnreadablePDF),
		errors.Is(err, roadmap.ErrInvalidCareerPath),
		errors.Is(err, roadmap.ErrInvalidLevel):
		return http.StatusBadRequest
	case errors.Is(err, resume.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// messageFor keeps client errors descriptive; server errors stay generic.
func messageFor(err error, status int) string {
	switch {
	case status >= 500:
		return "internal server error"
	case errors.Is(err, readiness.ErrNoScore):
		return "no readiness score found, upload your resume first"
	}
	return err.Error()
}

func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status := statusFor(err)
	if status >= 500 && log != nil {
		log.Error("request failed", "path", c.Path(), "error", err)
	}
	return presenter.Error(c, status, messageFor(err, status))
}

// bind parses the JSON body into dst and validates it. The returned error is
// already written to the response.
func bind(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	return check(c, dst)
}

func check(c *fiber.Ctx, dst any) (bool, error) {
	if err := validate.Struct(dst); err != nil {
		return false, presenter.Error(c, http.StatusBadRequest, validationMessage(err))
	}
	return true, nil
}

func validationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "invalid input"
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// currentUser reads the id set by the auth middleware.
func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := jwt.UserID(c)
	if !ok {
		return uuid.Nil, errUnauthenticated
	}
	return id, nil
}
