package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Limits holds one limiter per throttled route. Each has its own counter
// store, so a burst of logins does not eat into the signup or upload budget.
type Limits struct {
	Signup fiber.Handler
	Login  fiber.Handler
	Upload fiber.Handler
}

// NewLimits builds independent limiters that share the same max and window.
func NewLimits(maxRequests int, window time.Duration) Limits {
	return Limits{
		Signup: RateLimit(maxRequests, window),
		Login:  RateLimit(maxRequests, window),
		Upload: RateLimit(maxRequests, window),
	}
}

// RateLimit limits requests per client IP.
func RateLimit(maxRequests int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "too many requests, try again later",
			})
		},
	})
}
