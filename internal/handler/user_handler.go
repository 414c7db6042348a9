package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/export"
	"go-health-console/internal/model"
	"go-health-console/internal/pagination"
	"go-health-console/internal/service"
)

const userPageSize = 10

// GET /api/v1/users?page=N
func (h *RecordsHandler) GetUsers(c *fiber.Ctx) error {
	items, err := h.records.Users(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	page := pagination.New(c.QueryInt("page", 1), len(items), userPageSize)
	return c.JSON(fiber.Map{
		"data":       pagination.Slice(items, page),
		"page":       page.Number,
		"totalPages": page.TotalPages,
		"pageSize":   page.Size,
		"actions":    grants(c).Grant(model.ActivityUserManagement),
	})
}

// POST /api/v1/users
func (h *RecordsHandler) CreateUser(c *fiber.Ctx) error {
	var req service.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.UserID = 0
	return h.saveUser(c, &req)
}

// PUT /api/v1/users/:id
func (h *RecordsHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	var req service.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.UserID = id
	return h.saveUser(c, &req)
}

func (h *RecordsHandler) saveUser(c *fiber.Ctx, req *service.UserRequest) error {
	msg, err := h.records.SaveUser(c.UserContext(), req, actor(c))
	if err != nil {
		return saveError(c, err, "Failed to save user")
	}
	items, err := h.records.Users(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh users"})
	}
	return c.JSON(fiber.Map{"message": msg, "data": items})
}

// DELETE /api/v1/users/:id
func (h *RecordsHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	if err := h.records.DeleteUser(c.UserContext(), id, actor(c)); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to delete user"})
	}
	items, err := h.records.Users(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh users"})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully", "data": items})
}

// GET /api/v1/users/export/csv | /export/xlsx
func (h *RecordsHandler) ExportUsersCSV(c *fiber.Ctx) error {
	return h.exportUsers(c, false)
}

func (h *RecordsHandler) ExportUsersXLSX(c *fiber.Ctx) error {
	return h.exportUsers(c, true)
}

func (h *RecordsHandler) exportUsers(c *fiber.Ctx, asXLSX bool) error {
	items, err := h.records.Users(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch users"})
	}
	sheet := &export.Sheet{
		Name:     "Users",
		Filename: "User_Report",
		Headers:  []string{"UserID", "Name", "Email", "Phone Number", "Role", "Health Facility"},
	}
	for _, u := range items {
		sheet.Append(strconv.Itoa(u.UserID), u.Name, u.Email, u.PhoneNumber, u.RoleName, u.HealthFacilityName)
	}
	return sendSheet(c, sheet, asXLSX)
}
