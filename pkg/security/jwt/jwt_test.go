package jwt

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skilllens/pkg/auth"
)

const testSecret = "test-secret"

type memFlags struct {
	mu   sync.Mutex
	keys map[string]time.Duration
	err  error
}

func (m *memFlags) Mark(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keys == nil {
		m.keys = map[string]time.Duration{}
	}
	m.keys[key] = ttl
	return nil
}

func (m *memFlags) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.keys[key]
	return ok, nil
}

func newApp(revoked RevocationChecker) *fiber.App {
	app := fiber.New()
	app.Get("/me", NewAuthMiddleware(testSecret, "skilllens", revoked), func(c *fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		jti, _ := Token(c)
		return c.SendString(id.String() + "|" + jti)
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestGenerateAndParse(t *testing.T) {
	g := NewGenerator(testSecret, "skilllens", time.Hour)
	user := auth.User{ID: uuid.New()}

	tok, err := g.Generate(context.Background(), user)
	require.NoError(t, err)

	claims, err := Parse(tok, []byte(testSecret), "skilllens")
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)

	_, err = Parse(tok, []byte("other"), "skilllens")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = Parse(tok, []byte(testSecret), "someone-else")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredAndUnsigned(t *testing.T) {
	g := NewGenerator(testSecret, "skilllens", time.Minute)
	g.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := g.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)
	_, err = Parse(tok, []byte(testSecret), "skilllens")
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{RegisteredClaims: gojwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		Issuer:    "skilllens",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	unsigned, err := none.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = Parse(unsigned, []byte(testSecret), "skilllens")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	g := NewGenerator(testSecret, "skilllens", time.Hour)
	user := auth.User{ID: uuid.New()}
	tok, err := g.Generate(context.Background(), user)
	require.NoError(t, err)
	app := newApp(nil)

	status, _ := call(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, "Bearer garbage")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := call(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, user.ID.String())

	status, _ = call(t, app, tok)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestMiddlewareRejectsRevokedTokens(t *testing.T) {
	flags := &memFlags{}
	deny := NewDenylist(flags)
	g := NewGenerator(testSecret, "skilllens", time.Hour)
	tok, err := g.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)
	claims, err := Parse(tok, []byte(testSecret), "skilllens")
	require.NoError(t, err)
	app := newApp(deny)

	status, _ := call(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusOK, status)

	require.NoError(t, deny.Revoke(context.Background(), claims.ID, time.Hour))
	assert.Equal(t, time.Hour, flags.keys["skilllens:jwt:deny:"+claims.ID])

	status, body := call(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "revoked")

	flags.err = errors.New("redis down")
	status, _ = call(t, app, "Bearer "+tok)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}
