package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/menu"
	"go-health-console/internal/middleware"
	"go-health-console/internal/model"
	"go-health-console/internal/service"
)

type AuthHandler struct {
	auth       service.AuthService
	sessionTTL time.Duration
}

func NewAuthHandler(auth service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessionTTL: sessionTTL}
}

// Login exchanges credentials for a session cookie.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.auth.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, service.ErrLoginUnavailable) {
			return c.Status(502).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"data": fiber.Map{
			"user": result.User,
			"menu": result.Menu,
		},
	})
}

// Logout revokes the server-side session and expires the cookie.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid, ok := c.Locals("session_id").(string); ok && sid != "" {
		_ = h.auth.Logout(c.UserContext(), sid)
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Navigation rebuilds the sidebar entries from the session's grants.
// GET /api/v1/navigation
func (h *AuthHandler) Navigation(c *fiber.Ctx) error {
	perms, _ := c.Locals("permissions").([]model.ActivityPermission)
	name, _ := c.Locals("user_name").(string)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"userName": name,
			"menu":     menu.Build(perms),
		},
	})
}
