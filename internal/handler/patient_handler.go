package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/export"
	"go-health-console/internal/model"
	"go-health-console/internal/pagination"
	"go-health-console/internal/service"
)

// patientPageSize matches the original page's six rows per table page.
const patientPageSize = 6

// GET /api/v1/patients?page=N
func (h *RecordsHandler) GetPatients(c *fiber.Ctx) error {
	items, err := h.records.Patients(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch patients"})
	}
	page := pagination.New(c.QueryInt("page", 1), len(items), patientPageSize)
	return c.JSON(fiber.Map{
		"data":       pagination.Slice(items, page),
		"page":       page.Number,
		"totalPages": page.TotalPages,
		"pageSize":   page.Size,
		"actions":    grants(c).Grant(model.ActivityPatient),
	})
}

// POST /api/v1/patients
func (h *RecordsHandler) CreatePatient(c *fiber.Ctx) error {
	var req service.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.ID = 0
	return h.savePatient(c, &req)
}

// PUT /api/v1/patients/:id
func (h *RecordsHandler) UpdatePatient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid patient ID"})
	}
	var req service.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.ID = id
	return h.savePatient(c, &req)
}

func (h *RecordsHandler) savePatient(c *fiber.Ctx, req *service.PatientRequest) error {
	msg, err := h.records.SavePatient(c.UserContext(), req, actor(c))
	if err != nil {
		return saveError(c, err, "Failed to save patient")
	}
	items, err := h.records.Patients(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh patients"})
	}
	return c.JSON(fiber.Map{"message": msg, "data": items})
}

// DELETE /api/v1/patients/:id
func (h *RecordsHandler) DeletePatient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid patient ID"})
	}
	if err := h.records.DeletePatient(c.UserContext(), id, actor(c)); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to delete patient"})
	}
	items, err := h.records.Patients(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh patients"})
	}
	return c.JSON(fiber.Map{"message": "Patient deleted successfully", "data": items})
}

// GET /api/v1/patients/export/csv | /export/xlsx
func (h *RecordsHandler) ExportPatientsCSV(c *fiber.Ctx) error {
	return h.exportPatients(c, false)
}

func (h *RecordsHandler) ExportPatientsXLSX(c *fiber.Ctx) error {
	return h.exportPatients(c, true)
}

func (h *RecordsHandler) exportPatients(c *fiber.Ctx, asXLSX bool) error {
	items, err := h.records.Patients(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch patients"})
	}
	sheet := &export.Sheet{
		Name:     "Patients",
		Filename: "Patient_Report",
		Headers:  []string{"ID", "Name", "Gender", "Address", "Health Facility"},
	}
	for _, p := range items {
		sheet.Append(strconv.Itoa(p.ID), p.Name, p.Gender, p.Address, p.HealthFacilityName)
	}
	return sendSheet(c, sheet, asXLSX)
}
