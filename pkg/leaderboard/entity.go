package leaderboard

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit     = 50
	DefaultPeerLimit = 10
	// PeerWindow is the half-width of the peer score band.
	PeerWindow = 10
)

// Entry is one leaderboard row.
type Entry struct {
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	Score       int       `json:"score"`
	SkillsCount int       `json:"skills_count"`
	Rank        int       `json:"rank"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Position is a user's place on the leaderboard.
type Position struct {
	Rank  int `json:"rank"`
	Total int `json:"total"`
}

// Peer is another user inside the caller's score band.
type Peer struct {
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name"`
	Score           int       `json:"score"`
	SkillsCount     int       `json:"skills_count"`
	ScoreDifference int       `json:"score_difference"`
}

type Summary struct {
	Score       int `json:"score"`
	SkillsCount int `json:"skills_count"`
}

type Difference struct {
	Score  int `json:"score"`
	Skills int `json:"skills"`
}

// Comparison is the caller versus one peer; Difference is caller minus peer.
type Comparison struct {
	User       Summary    `json:"user"`
	Peer       Summary    `json:"peer"`
	Difference Difference `json:"difference"`
}
