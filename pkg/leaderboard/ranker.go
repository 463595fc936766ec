package leaderboard

import (
	"sort"

	"github.com/google/uuid"

	"github.com/artem13815/skilllens/pkg/readiness"
)

const unknownName = "Unknown"

// Rank orders scores descending and assigns 1-based positions. The sort is
// stable, so ties keep the order they were retrieved in.
func Rank(scores []readiness.Score) []Entry {
	sorted := make([]readiness.Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	out := make([]Entry, len(sorted))
	for i, s := range sorted {
		out[i] = Entry{
			UserID:      s.UserID,
			FullName:    displayName(s.FullName),
			Score:       s.Score,
			SkillsCount: s.SkillsCount,
			Rank:        i + 1,
			UpdatedAt:   s.UpdatedAt,
		}
	}
	return out
}

// PositionOf finds userID in ranked entries.
func PositionOf(ranked []Entry, userID uuid.UUID) (Position, bool) {
	for _, e := range ranked {
		if e.UserID == userID {
			return Position{Rank: e.Rank, Total: len(ranked)}, true
		}
	}
	return Position{}, false
}

// Band returns the inclusive peer score range around score, clamped to [0, 100].
func Band(score int) (lower, upper int) {
	lower, upper = score-PeerWindow, score+PeerWindow
	if lower < 0 {
		lower = 0
	}
	if upper > 100 {
		upper = 100
	}
	return lower, upper
}

// Peers keeps candidates inside the band around self's score, drops self and
// caps the result at limit.
func Peers(candidates []readiness.Score, self uuid.UUID, selfScore, limit int) []Peer {
	lower, upper := Band(selfScore)
	out := make([]Peer, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == self || c.Score < lower || c.Score > upper {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, Peer{
			UserID:          c.UserID,
			FullName:        displayName(c.FullName),
			Score:           c.Score,
			SkillsCount:     c.SkillsCount,
			ScoreDifference: c.Score - selfScore,
		})
	}
	return out
}

// Compare builds the head-to-head view of user against peer.
func Compare(user, peer readiness.Score) Comparison {
	return Comparison{
		User:       Summary{Score: user.Score, SkillsCount: user.SkillsCount},
		Peer:       Summary{Score: peer.Score, SkillsCount: peer.SkillsCount},
		Difference: Difference{Score: user.Score - peer.Score, Skills: user.SkillsCount - peer.SkillsCount},
	}
}

func displayName(name string) string {
	if name == "" {
		return unknownName
	}
	return name
}
