package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RayIDHeader carries the request id on requests and responses.
	RayIDHeader = "X-Ray-ID"
	// RayIDKey is the fiber Locals key holding the request id.
	RayIDKey = "ray_id"
)

// RayID assigns every request an id, reusing a valid incoming X-Ray-ID.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RayIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(RayIDKey, id)
		c.Set(RayIDHeader, id)
		return c.Next()
	}
}
