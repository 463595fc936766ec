package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skilllens/pkg/logger"
)

// RequestLogger logs one line per request. It expects requestid to run first.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		kv := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.Locals("requestid"),
		}
		switch {
		case status >= 500:
			log.Error("request", append(kv, "error", err)...)
		case status >= 400:
			log.Warn("request", kv...)
		default:
			log.Info("request", kv...)
		}
		return err
	}
}
