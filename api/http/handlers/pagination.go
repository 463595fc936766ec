package handlers

import "github.com/gofiber/fiber/v2"

const maxPageSize = 200

type page struct {
	Limit  int
	Offset int
}

// pageFrom reads ?limit and ?offset. Missing, malformed or out-of-range
// values fall back to defLimit and 0.
func pageFrom(c *fiber.Ctx, defLimit int) page {
	p := page{Limit: defLimit}
	if n := c.QueryInt("limit", 0); n > 0 && n <= maxPageSize {
		p.Limit = n
	}
	if n := c.QueryInt("offset", 0); n > 0 {
		p.Offset = n
	}
	return p
}
