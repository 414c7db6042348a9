package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/export"
	"go-health-console/internal/model"
	"go-health-console/internal/pagination"
	"go-health-console/internal/service"
)

const facilityPageSize = 10

// GetFacilities returns the facility list page.
// GET /api/v1/facilities?page=N
func (h *RecordsHandler) GetFacilities(c *fiber.Ctx) error {
	items, err := h.records.Facilities(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch health facilities"})
	}
	page := pagination.New(c.QueryInt("page", 1), len(items), facilityPageSize)
	return c.JSON(fiber.Map{
		"data":       pagination.Slice(items, page),
		"page":       page.Number,
		"totalPages": page.TotalPages,
		"pageSize":   page.Size,
		"actions":    grants(c).Grant(model.ActivityHealthFacility),
	})
}

// CreateFacility saves a new facility and returns the refreshed list.
// POST /api/v1/facilities
func (h *RecordsHandler) CreateFacility(c *fiber.Ctx) error {
	var req service.FacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.ID = 0
	return h.saveFacility(c, &req)
}

// UpdateFacility saves an edited facility.
// PUT /api/v1/facilities/:id
func (h *RecordsHandler) UpdateFacility(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid facility ID"})
	}
	var req service.FacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.ID = id
	return h.saveFacility(c, &req)
}

func (h *RecordsHandler) saveFacility(c *fiber.Ctx, req *service.FacilityRequest) error {
	msg, err := h.records.SaveFacility(c.UserContext(), req, actor(c))
	if err != nil {
		return saveError(c, err, "Failed to save health facility")
	}
	// Refetch strictly after the write acknowledgement; the visible list
	// always reflects server state.
	items, err := h.records.Facilities(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh health facilities"})
	}
	return c.JSON(fiber.Map{"message": msg, "data": items})
}

// DeleteFacility soft-deletes a facility and returns the refreshed list.
// DELETE /api/v1/facilities/:id
func (h *RecordsHandler) DeleteFacility(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid facility ID"})
	}
	if err := h.records.DeleteFacility(c.UserContext(), id, actor(c)); err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to delete health facility"})
	}
	items, err := h.records.Facilities(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to refresh health facilities"})
	}
	return c.JSON(fiber.Map{"message": "Health facility deleted successfully", "data": items})
}

// ExportFacilitiesCSV and ExportFacilitiesXLSX stream the full collection,
// untruncated and unpaginated.
// GET /api/v1/facilities/export/csv | /export/xlsx
func (h *RecordsHandler) ExportFacilitiesCSV(c *fiber.Ctx) error {
	return h.exportFacilities(c, false)
}

func (h *RecordsHandler) ExportFacilitiesXLSX(c *fiber.Ctx) error {
	return h.exportFacilities(c, true)
}

func (h *RecordsHandler) exportFacilities(c *fiber.Ctx, asXLSX bool) error {
	items, err := h.records.Facilities(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch health facilities"})
	}
	sheet := &export.Sheet{
		Name:     "Facilities",
		Filename: "HealthFacility_Report",
		Headers:  []string{"FacilityID", "Name", "District", "Region", "State", "Country"},
	}
	for _, f := range items {
		sheet.Append(strconv.Itoa(f.ID), f.Name, f.District, f.Region, f.State, f.Country)
	}
	return sendSheet(c, sheet, asXLSX)
}
