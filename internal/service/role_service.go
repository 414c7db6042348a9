package service

import (
	"context"
	"log/slog"

	"go-health-console/internal/model"
	"go-health-console/internal/upstream"
	"go-health-console/pkg/validator"
)

type RoleService interface {
	Roles(ctx context.Context) ([]model.Role, error)
	Mappings(ctx context.Context, roleID, userID int) ([]model.ActivityPermission, error)
	Save(ctx context.Context, req *SaveRoleRequest, userName string) (string, error)
	Delete(ctx context.Context, roleID int, actor string) error
}

// SaveRoleRequest carries the role and its full mapping matrix; the editor
// always submits every activity row and Save prunes the all-false ones.
type SaveRoleRequest struct {
	RoleID   int                 `json:"roleId"`
	RoleName string              `json:"roleName" validate:"required"`
	Mappings []model.RoleMapping `json:"roleMappings"`
}

type roleService struct {
	api upstream.API
	log *slog.Logger
}

func NewRoleService(api upstream.API, log *slog.Logger) RoleService {
	return &roleService{api: api, log: log}
}

func (s *roleService) Roles(ctx context.Context) ([]model.Role, error) {
	return s.api.Roles(ctx)
}

func (s *roleService) Mappings(ctx context.Context, roleID, userID int) ([]model.ActivityPermission, error) {
	return s.api.RoleMappings(ctx, roleID, userID)
}

func (s *roleService) Save(ctx context.Context, req *SaveRoleRequest, userName string) (string, error) {
	if err := validator.FirstError(req); err != nil {
		return "", err
	}
	return s.api.MapRole(ctx, model.MapRoleRequest{
		RoleID:       req.RoleID,
		RoleName:     req.RoleName,
		IsDeleted:    "0",
		UserName:     userName,
		RoleMappings: model.PruneMappings(req.Mappings),
	})
}

func (s *roleService) Delete(ctx context.Context, roleID int, actor string) error {
	_, err := s.api.DeleteRole(ctx, model.RoleDelete{
		RoleID:     roleID,
		IsDeleted:  model.SoftDeleted,
		ModifiedBy: actor,
	})
	return err
}
