package middleware

import (
	"context"
	"strings"

	"freezer/pkg/httperror"

	"github.com/gofiber/fiber/v2"
)

// NewSecurityHeadersMiddleware trusts the identity headers injected by the
// upstream authentication gate. The bearer credential is validated there;
// this layer only requires the headers to be present and exposes the
// resolved user id to handlers.
func NewSecurityHeadersMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get("User-ID"))
		authorization := strings.TrimSpace(c.Get("Authorization"))

		if userID == "" || authorization == "" {
			return unauthorized(c)
		}

		userCtx := c.UserContext()
		if userCtx == nil {
			userCtx = context.Background()
		}

		userCtx = context.WithValue(userCtx, "UserID", userID)

		c.SetUserContext(userCtx)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	err := httperror.Unauthorized(
		"freezer.security_headers.unauthorized",
		"User not found",
		nil,
	)

	return c.Status(err.Status).JSON(fiber.Map{
		"code":    err.Code,
		"message": err.Message,
	})
}
