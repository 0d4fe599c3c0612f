// Package auth provides the session based authorization middleware for the
// admin API surface.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobvista/jobvista/internal/web/session"
)

// Current resolves the session payload for the request, if any.
func Current(c *fiber.Ctx) (*session.Data, bool) {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return nil, false
	}

	data := new(session.Data)
	if err := data.Read(sessionID); err != nil {
		return nil, false
	}

	return data, true
}

// RequireAdmin rejects the request with 401 unless the session payload
// carries an admin identity. The check is stateless, every request
// re-reads the payload from the session store.
func RequireAdmin(c *fiber.Ctx) error {
	data, ok := Current(c)
	if !ok || !data.IsAdmin {
		return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}

	c.Locals("CurrentSession", data)

	return c.Next()
}

// BlockDemo rejects write verbs with 403 for demo sessions. Demo identities
// may browse the whole admin panel but never mutate anything.
func BlockDemo(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		if data, ok := Current(c); ok && data.IsDemo {
			return fiber.NewError(fiber.StatusForbidden, "demo mode is read-only")
		}
	}

	return c.Next()
}
