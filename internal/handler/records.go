package handler

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/export"
	"go-health-console/internal/permission"
	"go-health-console/internal/service"
	"go-health-console/internal/upstream"
	"go-health-console/pkg/validator"
)

// RecordsHandler serves the four entity pages. Per-entity methods live in
// facility_handler.go, worker_handler.go, patient_handler.go and
// user_handler.go.
type RecordsHandler struct {
	records service.RecordsService
}

func NewRecordsHandler(records service.RecordsService) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// GetDropdowns returns the form reference lists. Deliberately not gated on
// any view permission: the original pages fetch these on mount regardless.
// GET /api/v1/dropdowns
func (h *RecordsHandler) GetDropdowns(c *fiber.Ctx) error {
	dropdowns, err := h.records.Dropdowns(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch dropdown data"})
	}
	return c.JSON(fiber.Map{"data": dropdowns})
}

// actor returns the session user's display name for audit tags.
func actor(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok && name != "" {
		return name
	}
	return "system"
}

// grants returns the request's capability table.
func grants(c *fiber.Ctx) permission.Table {
	table, _ := c.Locals("grants").(permission.Table)
	return table
}

// saveError maps a failed save to a response. A business rejection keeps
// the editor open client-side and shows the server's own message, and a
// validation failure reads back to the form; every other failure (HTTP or
// transport) is a generic notification that never exposes internal text.
func saveError(c *fiber.Ctx, err error, fallback string) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return c.Status(422).JSON(fiber.Map{"error": apiErr.Error(), "statusCode": apiErr.StatusCode})
	}
	var valErr *validator.Error
	if errors.As(err, &valErr) {
		return c.Status(400).JSON(fiber.Map{"error": valErr.Error()})
	}
	return c.Status(502).JSON(fiber.Map{"error": fallback})
}

// sendSheet streams an export with its fixed download filename; the
// extension follows the format.
func sendSheet(c *fiber.Ctx, sheet *export.Sheet, asXLSX bool) error {
	var buf bytes.Buffer
	filename := sheet.Filename
	if asXLSX {
		if err := sheet.WriteXLSX(&buf); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		filename += ".xlsx"
	} else {
		if err := sheet.WriteCSV(&buf); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build export"})
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		filename += ".csv"
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
