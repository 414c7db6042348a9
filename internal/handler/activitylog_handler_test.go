package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"go-health-console/internal/model"
	"go-health-console/internal/upstream"
)

// fakeLogsAPI overrides ActivityLogs; the embedded interface covers the
// rest and panics if reached.
type fakeLogsAPI struct {
	upstream.API
	logs []model.LogEntry
	err  error
}

func (f *fakeLogsAPI) ActivityLogs(ctx context.Context) ([]model.LogEntry, error) {
	return f.logs, f.err
}

func TestGetActivityLogs(t *testing.T) {
	long := strings.Repeat("p", 40)
	logs := make([]model.LogEntry, 10)
	for i := range logs {
		logs[i] = model.LogEntry{LogID: i + 1, Action: "Insert", Endpoint: long, RequestData: long}
	}

	h := NewActivityLogHandler(&fakeLogsAPI{logs: logs})
	app := fiber.New()
	app.Get("/activity-logs", h.GetActivityLogs)

	t.Run("Eight Rows Per Page", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/activity-logs", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body := decodeBody(t, resp)
		if body["pageSize"] != float64(8) || body["totalPages"] != float64(2) {
			t.Errorf("unexpected page info: %v", body)
		}
		if len(body["data"].([]any)) != 8 {
			t.Error("expected a full page of 8 rows")
		}
	})

	t.Run("Display Values Are Truncated", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/activity-logs", nil))
		body := decodeBody(t, resp)
		row := body["data"].([]any)[0].(map[string]any)
		endpoint := row["endpoint"].(string)
		if len(endpoint) != model.TruncateLimit+3 || !strings.HasSuffix(endpoint, "...") {
			t.Errorf("endpoint not truncated: %q", endpoint)
		}
	})

	t.Run("Upstream Failure Is 502", func(t *testing.T) {
		h := NewActivityLogHandler(&fakeLogsAPI{err: &upstream.HTTPError{Status: 500}})
		app := fiber.New()
		app.Get("/activity-logs", h.GetActivityLogs)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/activity-logs", nil))
		if resp.StatusCode != 502 {
			t.Errorf("status = %d, want 502", resp.StatusCode)
		}
	})
}

func TestExportActivityLogsCSV(t *testing.T) {
	long := strings.Repeat("q", 40)
	h := NewActivityLogHandler(&fakeLogsAPI{logs: []model.LogEntry{
		{LogID: 1, Action: "Insert", Endpoint: long, RequestData: long, ResponseData: long, StatusCode: "00"},
	}})
	app := fiber.New()
	app.Get("/activity-logs/export/csv", h.ExportActivityLogsCSV)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/activity-logs/export/csv", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	cd := resp.Header.Get(fiber.HeaderContentDisposition)
	if !strings.Contains(cd, `filename="ActivityLog_Report.csv"`) {
		t.Errorf("content disposition = %q", cd)
	}

	raw, _ := io.ReadAll(resp.Body)
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("parsing export failed: %v", err)
	}
	// Exports carry the full values, never the display truncation.
	if got := records[1][3]; got != long {
		t.Errorf("endpoint truncated in export: %q", got)
	}
}
