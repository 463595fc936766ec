package jwt

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the middleware.
const (
	LocalUserID   = "userId"
	LocalTokenID  = "tokenId"
	LocalTokenExp = "tokenExp"
)

// RevocationChecker reports whether a jti was revoked on logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets user id (subject) into c.Locals("userId"). revoked may be nil.
func NewAuthMiddleware(secret, expectedIssuer string, revoked RevocationChecker) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		claims, err := Parse(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		if revoked != nil && claims.ID != "" {
			gone, err := revoked.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"message": "token check unavailable"})
			}
			if gone {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "token has been revoked"})
			}
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalTokenID, claims.ID)
		c.Locals(LocalTokenExp, claims.ExpiresAt.Time)
		return c.Next()
	}
}

// UserID returns the authenticated user set by the middleware.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals(LocalUserID).(string)
	id, err := uuid.Parse(s)
	return id, err == nil
}

// Token returns the jti and expiry of the authenticated token.
func Token(c *fiber.Ctx) (string, time.Time) {
	id, _ := c.Locals(LocalTokenID).(string)
	exp, _ := c.Locals(LocalTokenExp).(time.Time)
	return id, exp
}
