package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("resume not found")
	ErrUnsupportedFormat = errors.New("only PDF files are allowed")
	ErrUnreadablePDF     = errors.New("pdf parsing error")
	ErrTooLarge          = errors.New("file too large")
)

// Resume holds metadata of an uploaded file.
type Resume struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	StorageURI string    `json:"storage_uri"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// Parsed holds the text extracted from a résumé.
type Parsed struct {
	ResumeID uuid.UUID
	Text     string
}

// Repository persists upload history.
type Repository interface {
	// Create stores the metadata and the extracted text atomically.
	Create(ctx context.Context, r Resume, text string) error
	GetParsed(ctx context.Context, resumeID uuid.UUID) (Parsed, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Resume, error)
	// DeleteForOwner returns the deleted metadata for file cleanup.
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (Resume, error)
}
