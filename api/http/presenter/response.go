package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse acknowledges an action that has no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// PageResponse wraps one page of a caller's history.
type PageResponse[T any] struct {
	Items  []T `json:"items"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Message(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, MessageResponse{Message: message})
}

// Page never renders a null items list.
func Page[T any](c *fiber.Ctx, items []T, limit, offset int) error {
	if items == nil {
		items = []T{}
	}
	return JSON(c, fiber.StatusOK, PageResponse[T]{Items: items, Limit: limit, Offset: offset})
}
