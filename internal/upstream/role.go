package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"go-health-console/internal/model"
)

func (c *Client) Roles(ctx context.Context) ([]model.Role, error) {
	raw, err := c.post(ctx, "/api/Role/GetRoleData", emptyBody)
	if err != nil {
		return nil, err
	}
	var out []model.Role
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding roles: %w", err)
	}
	return out, nil
}

type mappedDataRequest struct {
	RoleID int `json:"roleId"`
	UserID int `json:"userId"`
}

// RoleMappings fetches a role's full permission matrix for the editor.
func (c *Client) RoleMappings(ctx context.Context, roleID, userID int) ([]model.ActivityPermission, error) {
	raw, err := c.post(ctx, "/api/Role/GetMappedData", mappedDataRequest{RoleID: roleID, UserID: userID})
	if err != nil {
		return nil, err
	}
	var out []model.ActivityPermission
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding role mappings: %w", err)
	}
	return out, nil
}

// MapRole saves a role and its mapping set as a full replace.
func (c *Client) MapRole(ctx context.Context, req model.MapRoleRequest) (string, error) {
	raw, err := c.post(ctx, "/api/Role/MapRole", req)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

func (c *Client) DeleteRole(ctx context.Context, req model.RoleDelete) (string, error) {
	raw, err := c.post(ctx, "/api/Role/InsertUpdateDeleteRole", req)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}
