package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"go-health-console/internal/model"
)

func (c *Client) PatientsPerFacility(ctx context.Context) ([]model.FacilityPatientCount, error) {
	raw, err := c.get(ctx, "/api/Dashboard/GetPatientPerHealthFacility", nil)
	if err != nil {
		return nil, err
	}
	var out []model.FacilityPatientCount
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding patients per facility: %w", err)
	}
	return out, nil
}

func (c *Client) WorkersPerRegion(ctx context.Context) ([]model.RegionWorkerCount, error) {
	raw, err := c.get(ctx, "/api/Dashboard/GetHealthWorkersPerRegion", nil)
	if err != nil {
		return nil, err
	}
	var out []model.RegionWorkerCount
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding workers per region: %w", err)
	}
	return out, nil
}

func (c *Client) GenderDistribution(ctx context.Context) ([]model.GenderCount, error) {
	raw, err := c.get(ctx, "/api/Dashboard/GenderDistribution", nil)
	if err != nil {
		return nil, err
	}
	var out []model.GenderCount
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding gender distribution: %w", err)
	}
	return out, nil
}
