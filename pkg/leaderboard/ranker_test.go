package leaderboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skilllens/pkg/readiness"
)

func score(name string, s int) readiness.Score {
	return readiness.Score{UserID: uuid.New(), FullName: name, Score: s, SkillsCount: s / 8, UpdatedAt: time.Unix(0, 0)}
}

func TestRankAssignsGaplessPositions(t *testing.T) {
	in := []readiness.Score{score("c", 48), score("a", 90), score("", 64), score("b", 64), score("d", 40)}
	ranked := Rank(in)

	require.Len(t, ranked, 5)
	assert.Equal(t, "a", ranked[0].FullName)
	assert.Equal(t, 1, ranked[0].Rank)
	for i, e := range ranked {
		assert.Equal(t, i+1, e.Rank)
		if i > 0 {
			assert.LessOrEqual(t, e.Score, ranked[i-1].Score)
		}
	}
	// ties keep retrieval order; missing names become "Unknown"
	assert.Equal(t, "Unknown", ranked[1].FullName)
	assert.Equal(t, "b", ranked[2].FullName)
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestPositionOf(t *testing.T) {
	in := []readiness.Score{score("a", 50), score("b", 70)}
	ranked := Rank(in)

	pos, ok := PositionOf(ranked, in[0].UserID)
	require.True(t, ok)
	assert.Equal(t, Position{Rank: 2, Total: 2}, pos)

	_, ok = PositionOf(ranked, uuid.New())
	assert.False(t, ok)
}

func TestBandClamps(t *testing.T) {
	lo, hi := Band(5)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 15, hi)
	lo, hi = Band(95)
	assert.Equal(t, 85, lo)
	assert.Equal(t, 100, hi)
}

func TestPeersStayInBandAndExcludeSelf(t *testing.T) {
	self := score("me", 60)
	candidates := []readiness.Score{self, score("p1", 50), score("p2", 70), score("far", 71), score("low", 49), score("p3", 64)}

	peers := Peers(candidates, self.UserID, self.Score, 10)
	require.Len(t, peers, 3)
	for _, p := range peers {
		assert.NotEqual(t, self.UserID, p.UserID)
		assert.GreaterOrEqual(t, p.Score, 50)
		assert.LessOrEqual(t, p.Score, 70)
		assert.Equal(t, p.Score-60, p.ScoreDifference)
	}

	assert.Len(t, Peers(candidates, self.UserID, self.Score, 2), 2)
}

func TestCompare(t *testing.T) {
	c := Compare(readiness.Score{Score: 72, SkillsCount: 4}, readiness.Score{Score: 56, SkillsCount: 2})
	assert.Equal(t, Difference{Score: 16, Skills: 2}, c.Difference)
	assert.Equal(t, 72, c.User.Score)
	assert.Equal(t, 2, c.Peer.SkillsCount)
}
