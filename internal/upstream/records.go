package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"go-health-console/internal/model"
)

// List endpoints are POSTs with an empty object body, a quirk of the
// records API.
var emptyBody = struct{}{}

func (c *Client) Facilities(ctx context.Context) ([]model.HealthFacility, error) {
	raw, err := c.post(ctx, "/api/HealthFacility/GetHealthFacilityData", emptyBody)
	if err != nil {
		return nil, err
	}
	var out []model.HealthFacility
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding facilities: %w", err)
	}
	return out, nil
}

func (c *Client) SaveFacility(ctx context.Context, req model.FacilitySave) (string, error) {
	raw, err := c.post(ctx, "/api/HealthFacility/InsertUpdateDeleteHealthFacility", req)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

func (c *Client) Workers(ctx context.Context) ([]model.HealthWorker, error) {
	raw, err := c.post(ctx, "/api/HealthWorker/GetHealthWorkerData", emptyBody)
	if err != nil {
		return nil, err
	}
	var out []model.HealthWorker
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding workers: %w", err)
	}
	return out, nil
}

func (c *Client) SaveWorker(ctx context.Context, req model.WorkerSave) (string, error) {
	raw, err := c.post(ctx, "/api/HealthWorker/InsertUpdateDeleteHealthWorker", req)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

func (c *Client) Patients(ctx context.Context) ([]model.Patient, error) {
	raw, err := c.post(ctx, "/api/Patient/GetPatientData", emptyBody)
	if err != nil {
		return nil, err
	}
	var out []model.Patient
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding patients: %w", err)
	}
	return out, nil
}

func (c *Client) SavePatient(ctx context.Context, req model.PatientSave) (string, error) {
	raw, err := c.post(ctx, "/api/Patient/InsertUpdateDeletePatient", req)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	raw, err := c.post(ctx, "/api/User/GetUserData", emptyBody)
	if err != nil {
		return nil, err
	}
	var out []model.User
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return out, nil
}

func (c *Client) SaveUser(ctx context.Context, req model.UserSave) (string, error) {
	raw, err := c.post(ctx, "/api/User/InsertUpdateDeleteUser", req)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

func (c *Client) Dropdowns(ctx context.Context) (*model.Dropdowns, error) {
	raw, err := c.get(ctx, "/api/User/GetDropdownData", nil)
	if err != nil {
		return nil, err
	}
	var out model.Dropdowns
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding dropdowns: %w", err)
	}
	return &out, nil
}

// ActivityLogs fetches the audit trail. The RoleId=1 query is fixed; the
// endpoint ignores other values.
func (c *Client) ActivityLogs(ctx context.Context) ([]model.LogEntry, error) {
	raw, err := c.get(ctx, "/api/ActivityLog/GetActivityLogData", map[string]string{"RoleId": "1"})
	if err != nil {
		return nil, err
	}
	var out []model.LogEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding activity logs: %w", err)
	}
	return out, nil
}
