package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/skilllens/api/http/presenter"
	"github.com/artem13815/skilllens/pkg/logger"
	"github.com/artem13815/skilllens/pkg/resume"
)

type ResumeHandler struct {
	svc resume.UseCase
	log *logger.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.UseCase, log *logger.Logger, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20
	}
	return &ResumeHandler{svc: svc, log: log, maxBytes: maxBytes}
}

// Upload scores a PDF résumé and stores the result as the caller's readiness score.
// @Summary Upload and score a resume
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Resume (PDF)"
// @Security BearerAuth
// @Success 200 {object} resume.UploadResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 413 {object} presenter.ErrorResponse
// @Router  /resume/upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf)")
	}
	if !resume.IsPDF(fh.Filename) {
		return respondError(c, h.log, resume.ErrUnsupportedFormat)
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return respondError(c, h.log, err)
	}
	result, err := h.svc.Upload(c.UserContext(), userID, fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info("resume scored", "user_id", userID.String(), "score", result.Score, "skills", result.SkillsCount)
	return presenter.JSON(c, http.StatusOK, result)
}

// Score returns the caller's current readiness score.
// @Summary Current readiness score
// @Tags    resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} readiness.Score
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/score [get]
func (h *ResumeHandler) Score(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	sc, err := h.svc.Score(c.UserContext(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, sc)
}

// History lists the caller's uploads, newest first.
// @Summary Upload history
// @Tags    resume
// @Produce json
// @Param   limit  query int false "page size (default 20, max 200)"
// @Param   offset query int false "offset"
// @Security BearerAuth
// @Success 200 {object} presenter.PageResponse[resume.Resume]
// @Router  /resume/history [get]
func (h *ResumeHandler) History(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	pg := pageFrom(c, 20)
	items, err := h.svc.History(c.UserContext(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.Page(c, items, pg.Limit, pg.Offset)
}

// Get returns one upload with its extracted text.
// @Summary Upload details
// @Tags    resume
// @Produce json
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/history/{id} [get]
func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	meta, parsed, err := h.svc.Get(c.UserContext(), userID, id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"resume": meta, "text": parsed.Text})
}

// Delete removes one upload. The readiness score is kept.
// @Summary Delete an upload
// @Tags    resume
// @Param   id path string true "resume id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resume/history/{id} [delete]
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid resume id")
	}
	if err := h.svc.Delete(c.UserContext(), userID, id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", resume.ErrTooLarge, max)
	}
	return b, nil
}
