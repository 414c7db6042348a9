package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/export"
	"go-health-console/internal/model"
	"go-health-console/internal/pagination"
	"go-health-console/internal/service"
)

const workerPageSize = 10

// GET /api/v1/workers?page=N
func (h *RecordsHandler) GetWorkers(c *fiber.Ctx) error {
	items, err := h.records.Workers(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch health workers"})
	}
	page := pagination.New(c.QueryInt("page", 1), len(items), workerPageSize)
	return c.JSON(fiber.Map{
		"data":       pagination.Slice(items, page),
		"page":       page.Number,
		"totalPages": page.TotalPages,
		"pageSize":   page.Size,
		"actions":    grants(c).Grant(model.ActivityHealthWorker),
	})
}

// POST /api/v1/workers
func (h *RecordsHandler) CreateWorker(c *fiber.Ctx) error {
	var req service.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.ID = 0
	return h.saveWorker(c, &req)
}

// PUT /api/v1/workers/:id
func (h *RecordsHandler) UpdateWorker(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid worker ID"})
	}
	var req service.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.ID = id
	return h.saveWorker(c, &req)
}

func (h *RecordsHandler) saveWorker(c *fiber.Ctx, req *service.WorkerRequest) error {
	msg, err := h.records.SaveWorker(c.UserContext(), req, actor(c))
	if err != nil {
		return saveError(c, err, "Failed to save health worker")
	}
	items, err := h.records.Workers(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh health workers"})
	}
	return c.JSON(fiber.Map{"message": msg, "data": items})
}

// DELETE /api/v1/workers/:id
func (h *RecordsHandler) DeleteWorker(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid worker ID"})
	}
	if err := h.records.DeleteWorker(c.UserContext(), id, actor(c)); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to delete health worker"})
	}
	items, err := h.records.Workers(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh health workers"})
	}
	return c.JSON(fiber.Map{"message": "Health worker deleted successfully", "data": items})
}

// GET /api/v1/workers/export/csv | /export/xlsx
func (h *RecordsHandler) ExportWorkersCSV(c *fiber.Ctx) error {
	return h.exportWorkers(c, false)
}

func (h *RecordsHandler) ExportWorkersXLSX(c *fiber.Ctx) error {
	return h.exportWorkers(c, true)
}

func (h *RecordsHandler) exportWorkers(c *fiber.Ctx, asXLSX bool) error {
	items, err := h.records.Workers(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch health workers"})
	}
	sheet := &export.Sheet{
		Name:     "Workers",
		Filename: "HealthWorker_Report",
		Headers:  []string{"WorkerID", "Name", "Designation", "Email", "Phone Number", "Health Facility"},
	}
	for _, w := range items {
		sheet.Append(strconv.Itoa(w.ID), w.Name, w.Designation, w.Email, w.PhoneNumber, w.HealthFacilityName)
	}
	return sendSheet(c, sheet, asXLSX)
}
