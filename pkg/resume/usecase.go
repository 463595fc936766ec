package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/logger"
	"github.com/artem13815/skilllens/pkg/nlp"
	"github.com/artem13815/skilllens/pkg/readiness"
)

// UploadResult is what the upload endpoint returns.
type UploadResult struct {
	Analysis
	ResumeID uuid.UUID `json:"resume_id"`
	File     string    `json:"file"`
}

// Invalidator drops derived data (the cached leaderboard) after a score change.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// UseCase describes résumé upload and history.
type UseCase interface {
	Upload(ctx context.Context, ownerID uuid.UUID, filename, mimeType string, data []byte) (UploadResult, error)
	Score(ctx context.Context, ownerID uuid.UUID) (readiness.Score, error)
	History(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Resume, Parsed, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type service struct {
	repo        Repository
	scores      readiness.Repository
	files       FileStore
	lexicon     nlp.Lexicon
	invalidator Invalidator
	log         *logger.Logger
	parse       func(filename string, data []byte) (string, error)
	now         func() time.Time
}

// NewService wires the upload pipeline. invalidator may be nil.
func NewService(repo Repository, scores readiness.Repository, files FileStore, lexicon nlp.Lexicon, invalidator Invalidator, log *logger.Logger) UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &service{
		repo:        repo,
		scores:      scores,
		files:       files,
		lexicon:     lexicon,
		invalidator: invalidator,
		log:         log,
		parse:       ParseResumeText,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Upload(ctx context.Context, ownerID uuid.UUID, filename, mimeType string, data []byte) (UploadResult, error) {
	if !IsPDF(filename) {
		return UploadResult{}, ErrUnsupportedFormat
	}
	text, err := s.parse(filename, data)
	if err != nil {
		return UploadResult{}, err
	}
	if strings.TrimSpace(text) == "" {
		// Image-only PDFs have no text layer; they score as a résumé listing no skills.
		s.log.Info("resume has no extractable text", "user_id", ownerID.String(), "file", filename)
	}
	analysis := Evaluate(text, s.lexicon)

	resumeID := uuid.New()
	key := ObjectKey(ownerID, resumeID)
	uri, err := s.files.Save(ctx, key, data)
	if err != nil {
		return UploadResult{}, fmt.Errorf("store resume file: %w", err)
	}
	now := s.now()
	meta := Resume{
		ID:         resumeID,
		OwnerID:    ownerID,
		Filename:   filename,
		MimeType:   mimeType,
		Size:       int64(len(data)),
		StorageURI: uri,
		Score:      analysis.Score,
		CreatedAt:  now,
	}
	if err := s.repo.Create(ctx, meta, text); err != nil {
		s.removeFile(ctx, key)
		return UploadResult{}, fmt.Errorf("save resume metadata: %w", err)
	}
	if err := s.scores.Upsert(ctx, readiness.Score{
		UserID:      ownerID,
		Score:       readiness.Clamp(analysis.Score),
		SkillsCount: analysis.SkillsCount,
		UpdatedAt:   now,
	}); err != nil {
		// Roll back so history never lists an unscored upload.
		if _, derr := s.repo.DeleteForOwner(ctx, ownerID, resumeID); derr != nil {
			s.log.Warn("resume metadata cleanup failed", "resume_id", resumeID.String(), "error", derr)
		}
		s.removeFile(ctx, key)
		return UploadResult{}, fmt.Errorf("save readiness score: %w", err)
	}
	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			s.log.Warn("leaderboard cache invalidation failed", "error", err)
		}
	}
	return UploadResult{Analysis: analysis, ResumeID: resumeID, File: uri}, nil
}

func (s *service) Score(ctx context.Context, ownerID uuid.UUID) (readiness.Score, error) {
	return s.scores.Get(ctx, ownerID)
}

func (s *service) History(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Resume, Parsed, error) {
	meta, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Resume{}, Parsed{}, err
	}
	parsed, err := s.repo.GetParsed(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Resume{}, Parsed{}, err
	}
	return meta, parsed, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	meta, err := s.repo.DeleteForOwner(ctx, ownerID, id)
	if err != nil {
		return err
	}
	s.removeFile(ctx, ObjectKey(meta.OwnerID, meta.ID))
	return nil
}

func (s *service) removeFile(ctx context.Context, key string) {
	if err := s.files.Delete(ctx, key); err != nil {
		s.log.Warn("resume file cleanup failed", "key", key, "error", err)
	}
}
