package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"go-health-console/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for the user's profile and permission
// grants. A business rejection (wrong credentials) surfaces as *APIError.
func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginData, error) {
	raw, err := c.post(ctx, "/api/Auth/Login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	var data model.LoginData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}
	return &data, nil
}
