package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/permission"
	"go-health-console/internal/session"
	"go-health-console/pkg/jwt"
)

// SessionCookie is the name of the console's session cookie.
const SessionCookie = "console_session"

// RequireSession is the route guard: it re-hydrates the identity from the
// signed cookie and the session store on every request, so a page reload
// or second tab keeps the session. Missing or invalid state renders the
// unauthorized placeholder.
func RequireSession(sessions session.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			// Fallback for API clients sending "Bearer <token>".
			parts := strings.Split(c.Get("Authorization"), " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}
		}
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized Access"})
		}

		claims, err := jwt.ValidateSessionToken(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized Access"})
		}

		sess, err := sessions.Get(claims.SessionID)
		if err != nil || !sess.Authenticated() {
			return c.Status(401).JSON(fiber.Map{"error": "Unauthorized Access"})
		}

		// Set session info in context for downstream handlers
		c.Locals("session_id", claims.SessionID)
		c.Locals("user_id", sess.User.UserID)
		c.Locals("user_name", sess.User.Name)
		c.Locals("permissions", sess.Permissions)
		c.Locals("grants", permission.NewTable(sess.Permissions))

		return c.Next()
	}
}

// RequireActivity gates a route on one capability of one activity.
func RequireActivity(activity, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, ok := c.Locals("grants").(permission.Table)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No permissions found"})
		}
		if !table.Can(activity, action) {
			return c.Status(403).JSON(fiber.Map{
				"error": "Forbidden: requires '" + action + "' on '" + activity + "'",
			})
		}
		return c.Next()
	}
}

// RequireAnyActivity passes when the activity carries at least one of the
// given actions. The role save endpoint serves both create and edit, so it
// accepts either capability.
func RequireAnyActivity(activity string, actions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		table, ok := c.Locals("grants").(permission.Table)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No permissions found"})
		}
		for _, action := range actions {
			if table.Can(activity, action) {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires one of " + strings.Join(actions, ", ") + " on '" + activity + "'",
		})
	}
}
