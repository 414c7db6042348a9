package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/export"
	"go-health-console/internal/model"
	"go-health-console/internal/service"
)

type RoleHandler struct {
	roles service.RoleService
}

func NewRoleHandler(roles service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// GetRoles returns all roles plus the fixed activity table the mapping
// editor renders its rows from.
// GET /api/v1/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.roles.Roles(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	return c.JSON(fiber.Map{
		"data":       roles,
		"activities": model.Activities,
		"actions":    grants(c).Grant(model.ActivityRoleManagement),
	})
}

// GetRoleMappings returns a role's permission matrix for the editor.
// GET /api/v1/roles/:id/mappings
func (h *RoleHandler) GetRoleMappings(c *fiber.Ctx) error {
	roleID, err := strconv.Atoi(c.Params("id"))
	if err != nil || roleID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}
	userID, _ := c.Locals("user_id").(int)

	mappings, err := h.roles.Mappings(c.UserContext(), roleID, userID)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch role data"})
	}
	return c.JSON(fiber.Map{"data": mappings})
}

// SaveRole saves a role and its full mapping set (create and edit share
// this endpoint, as upstream's MapRole does).
// POST /api/v1/roles
func (h *RoleHandler) SaveRole(c *fiber.Ctx) error {
	var req service.SaveRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	msg, err := h.roles.Save(c.UserContext(), &req, actor(c))
	if err != nil {
		return saveError(c, err, "Failed to save role")
	}
	roles, err := h.roles.Roles(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh roles"})
	}
	return c.JSON(fiber.Map{"message": msg, "data": roles})
}

// DeleteRole soft-deletes a role.
// DELETE /api/v1/roles/:id
func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	roleID, err := strconv.Atoi(c.Params("id"))
	if err != nil || roleID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid role ID"})
	}
	if err := h.roles.Delete(c.UserContext(), roleID, actor(c)); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to delete role"})
	}
	roles, err := h.roles.Roles(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh roles"})
	}
	return c.JSON(fiber.Map{"message": "Role deleted successfully", "data": roles})
}

// GET /api/v1/roles/export/xlsx
func (h *RoleHandler) ExportRolesXLSX(c *fiber.Ctx) error {
	roles, err := h.roles.Roles(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch roles"})
	}
	sheet := &export.Sheet{
		Name:     "Roles",
		Filename: "Role_Report",
		Headers:  []string{"RoleID", "Role Name"},
	}
	for _, r := range roles {
		sheet.Append(strconv.Itoa(r.RoleID), r.RoleName)
	}
	return sendSheet(c, sheet, true)
}
