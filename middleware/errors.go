package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anjaleena-mwt/reciperealm/models"
)

// CustomErrorHandler turns unhandled errors into the standard JSON
// envelope. Business failures are answered directly by the handlers; this
// is the catch-all for everything else.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(models.NewErrorResponse(message))
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		return c.Next()
	}
}
