package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the caller's account plus readiness summary. Score fields are
// nil when no résumé was uploaded.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CreatedAt   time.Time `json:"created_at"`
	Score       *int      `json:"score"`
	SkillsCount *int      `json:"skills_count"`
}

// Session identifies a verified token; used to revoke it on logout.
type Session struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}
