// Package upstream is the typed client for the remote records API. Every
// collection and mutation the console shows goes through here; the console
// itself stores nothing but sessions.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"go-health-console/internal/model"
)

// StatusOK is the success sentinel the records API puts in otherwise-200
// responses. Anything else is a business rejection carrying a message.
const StatusOK = "00"

// HTTPError is a non-2xx response from the records API.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("records api returned HTTP %d", e.Status)
}

// APIError is a 2xx response whose status sentinel is not "00". Message is
// the server's own text and is shown to the user verbatim.
type APIError struct {
	StatusCode string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "records api rejected the request (status " + e.StatusCode + ")"
}

// envelope is the common response wrapper. Data is left raw because its
// shape varies per endpoint (array, object, or bare message string).
type envelope struct {
	StatusCode string          `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

// API is the full upstream surface, an interface so services can be tested
// against a fake.
type API interface {
	Login(ctx context.Context, email, password string) (*model.LoginData, error)

	Facilities(ctx context.Context) ([]model.HealthFacility, error)
	SaveFacility(ctx context.Context, req model.FacilitySave) (string, error)
	Workers(ctx context.Context) ([]model.HealthWorker, error)
	SaveWorker(ctx context.Context, req model.WorkerSave) (string, error)
	Patients(ctx context.Context) ([]model.Patient, error)
	SavePatient(ctx context.Context, req model.PatientSave) (string, error)
	Users(ctx context.Context) ([]model.User, error)
	SaveUser(ctx context.Context, req model.UserSave) (string, error)
	Dropdowns(ctx context.Context) (*model.Dropdowns, error)

	Roles(ctx context.Context) ([]model.Role, error)
	RoleMappings(ctx context.Context, roleID, userID int) ([]model.ActivityPermission, error)
	MapRole(ctx context.Context, req model.MapRoleRequest) (string, error)
	DeleteRole(ctx context.Context, req model.RoleDelete) (string, error)

	ActivityLogs(ctx context.Context) ([]model.LogEntry, error)

	PatientsPerFacility(ctx context.Context) ([]model.FacilityPatientCount, error)
	WorkersPerRegion(ctx context.Context) ([]model.RegionWorkerCount, error)
	GenderDistribution(ctx context.Context) ([]model.GenderCount, error)
}

// Client implements API over HTTP.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

var _ API = (*Client)(nil)

func New(baseURL string, log *slog.Logger) *Client {
	httpc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpc, log: log}
}

// post issues a POST and returns the envelope's raw data. The error
// taxonomy: transport failures wrap the underlying error, non-2xx becomes
// *HTTPError, a non-"00" sentinel becomes *APIError.
func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&env).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("calling records api %s: %w", path, err)
	}
	return c.unwrap(path, resp, &env)
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) (json.RawMessage, error) {
	var env envelope
	req := c.http.R().SetContext(ctx).SetResult(&env)
	for k, v := range query {
		req.SetQueryParam(k, v)
	}
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("calling records api %s: %w", path, err)
	}
	return c.unwrap(path, resp, &env)
}

func (c *Client) unwrap(path string, resp *resty.Response, env *envelope) (json.RawMessage, error) {
	if resp.IsError() {
		c.log.Warn("records api http failure", "path", path, "status", resp.StatusCode())
		return nil, &HTTPError{Status: resp.StatusCode()}
	}
	if env.StatusCode != "" && env.StatusCode != StatusOK {
		// Saves carry the rejection message as a bare string in data.
		var msg string
		_ = json.Unmarshal(env.Data, &msg)
		c.log.Info("records api rejected request", "path", path, "statusCode", env.StatusCode)
		return nil, &APIError{StatusCode: env.StatusCode, Message: msg}
	}
	return env.Data, nil
}

// message decodes a save response's data, which is a human-readable string.
func message(raw json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return string(raw)
	}
	return msg
}
