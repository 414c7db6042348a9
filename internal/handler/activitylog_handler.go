package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/export"
	"go-health-console/internal/model"
	"go-health-console/internal/pagination"
	"go-health-console/internal/upstream"
)

// logPageSize matches the original page's eight rows per table page.
const logPageSize = 8

type ActivityLogHandler struct {
	api upstream.API
}

func NewActivityLogHandler(api upstream.API) *ActivityLogHandler {
	return &ActivityLogHandler{api: api}
}

// GetActivityLogs returns one page of the audit trail with the long text
// fields truncated for display. Exports carry the full values.
// GET /api/v1/activity-logs?page=N
func (h *ActivityLogHandler) GetActivityLogs(c *fiber.Ctx) error {
	logs, err := h.api.ActivityLogs(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch activity logs"})
	}

	page := pagination.New(c.QueryInt("page", 1), len(logs), logPageSize)
	rows := pagination.Slice(logs, page)
	display := make([]model.LogEntry, len(rows))
	for i, e := range rows {
		display[i] = e.DisplayRow()
	}

	return c.JSON(fiber.Map{
		"data":       display,
		"page":       page.Number,
		"totalPages": page.TotalPages,
		"pageSize":   page.Size,
	})
}

// ExportActivityLogsCSV streams the full, untruncated audit trail.
// GET /api/v1/activity-logs/export/csv
func (h *ActivityLogHandler) ExportActivityLogsCSV(c *fiber.Ctx) error {
	logs, err := h.api.ActivityLogs(c.UserContext())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to fetch activity logs"})
	}
	sheet := &export.Sheet{
		Name:     "ActivityLogs",
		Filename: "ActivityLog_Report",
		Headers: []string{
			"LogID", "UserID", "Action", "Endpoint", "Method",
			"Request Data", "Response Data", "Status Code", "Timestamp",
		},
	}
	for _, e := range logs {
		sheet.Append(
			strconv.Itoa(e.LogID), strconv.Itoa(e.UserID), e.Action, e.Endpoint,
			e.Method, e.RequestData, e.ResponseData, e.StatusCode, e.Timestamp,
		)
	}
	return sendSheet(c, sheet, false)
}
