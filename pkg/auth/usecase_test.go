package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skilllens/pkg/readiness"
	"github.com/artem13815/skilllens/pkg/readiness/readinesstest"
)

type memUsers struct {
	mu      sync.Mutex
	byEmail map[string]User
	err     error
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]User{}} }

func (m *memUsers) Create(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type stubTokens struct{}

func (stubTokens) Generate(_ context.Context, u User) (string, error) { return "token-" + u.ID.String(), nil }

type recordingRevoker struct {
	id  string
	ttl time.Duration
}

func (r *recordingRevoker) Revoke(_ context.Context, id string, ttl time.Duration) error {
	r.id, r.ttl = id, ttl
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	users := newMemUsers()
	svc := NewAuthService(users, stubTokens{}, nil, readinesstest.New())
	ctx := context.Background()

	res, err := svc.Register(ctx, "  Ada@Example.com ", "secret1", "Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", res.User.Email)
	assert.Equal(t, "Ada Lovelace", res.User.FullName)
	assert.NotEqual(t, "secret1", res.User.PasswordHash)
	assert.Equal(t, "token-"+res.User.ID.String(), res.Token)

	_, err = svc.Register(ctx, "ada@example.com", "other", "Ada")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	logged, err := svc.Login(ctx, "ADA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, logged.User.ID)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	users := newMemUsers()
	svc := NewAuthService(users, stubTokens{}, nil, readinesstest.New())

	_, err := svc.Register(context.Background(), "long@example.com", strings.Repeat("p", 80), "Long")
	require.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Empty(t, users.byEmail)

	_, err = svc.Register(context.Background(), "edge@example.com", strings.Repeat("p", 72), "Edge")
	require.NoError(t, err)
}

func TestLoginStorageErrorIsNotCredentials(t *testing.T) {
	users := newMemUsers()
	users.err = errors.New("connection refused")
	svc := NewAuthService(users, stubTokens{}, nil, readinesstest.New())

	_, err := svc.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfileWithAndWithoutScore(t *testing.T) {
	users := newMemUsers()
	scores := readinesstest.New()
	svc := NewAuthService(users, stubTokens{}, nil, scores)
	ctx := context.Background()

	res, err := svc.Register(ctx, "grace@example.com", "secret1", "Grace")
	require.NoError(t, err)

	p, err := svc.Profile(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Nil(t, p.Score)
	assert.Nil(t, p.SkillsCount)

	require.NoError(t, scores.Upsert(ctx, readiness.Score{UserID: res.User.ID, Score: 64, SkillsCount: 3}))
	p, err = svc.Profile(ctx, res.User.ID)
	require.NoError(t, err)
	require.NotNil(t, p.Score)
	assert.Equal(t, 64, *p.Score)
	assert.Equal(t, 3, *p.SkillsCount)

	_, err = svc.Profile(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogoutRevokesUntilExpiry(t *testing.T) {
	rev := &recordingRevoker{}
	svc := NewAuthService(newMemUsers(), stubTokens{}, rev, readinesstest.New()).(*authService)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	require.NoError(t, svc.Logout(context.Background(), Session{TokenID: "jti-1", ExpiresAt: now.Add(time.Hour)}))
	assert.Equal(t, "jti-1", rev.id)
	assert.Equal(t, time.Hour, rev.ttl)

	rev.id = ""
	require.NoError(t, svc.Logout(context.Background(), Session{TokenID: "jti-2", ExpiresAt: now.Add(-time.Minute)}))
	assert.Empty(t, rev.id)
}

func TestLogoutWithoutRevoker(t *testing.T) {
	svc := NewAuthService(newMemUsers(), stubTokens{}, nil, readinesstest.New())
	assert.NoError(t, svc.Logout(context.Background(), Session{TokenID: "x", ExpiresAt: time.Now().Add(time.Hour)}))
}
