package service

import (
	"context"
	"log/slog"

	"go-health-console/internal/model"
	"go-health-console/internal/upstream"
	"go-health-console/pkg/validator"
)

// RecordsService owns the four entity pages' data operations: full-list
// fetch, create/update with actor tags, soft delete. Every mutation is
// followed by a refetch at the handler, never a local patch.
type RecordsService interface {
	Facilities(ctx context.Context) ([]model.HealthFacility, error)
	SaveFacility(ctx context.Context, req *FacilityRequest, actor string) (string, error)
	DeleteFacility(ctx context.Context, id int, actor string) error

	Workers(ctx context.Context) ([]model.HealthWorker, error)
	SaveWorker(ctx context.Context, req *WorkerRequest, actor string) (string, error)
	DeleteWorker(ctx context.Context, id int, actor string) error

	Patients(ctx context.Context) ([]model.Patient, error)
	SavePatient(ctx context.Context, req *PatientRequest, actor string) (string, error)
	DeletePatient(ctx context.Context, id int, actor string) error

	Users(ctx context.Context) ([]model.User, error)
	SaveUser(ctx context.Context, req *UserRequest, actor string) (string, error)
	DeleteUser(ctx context.Context, id int, actor string) error

	Dropdowns(ctx context.Context) (*model.Dropdowns, error)
}

type FacilityRequest struct {
	ID       int    `json:"id" validate:"omitempty,record_id"`
	Name     string `json:"name" validate:"required"`
	District string `json:"district"`
	Region   string `json:"region"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

type WorkerRequest struct {
	ID               int    `json:"id" validate:"omitempty,record_id"`
	Name             string `json:"name" validate:"required"`
	Designation      string `json:"designation"`
	Email            string `json:"email" validate:"omitempty,email"`
	PhoneNumber      string `json:"phoneNumber"`
	HealthFacilityID int    `json:"healthFacilityId"`
}

type PatientRequest struct {
	ID               int    `json:"id" validate:"omitempty,record_id"`
	Name             string `json:"name" validate:"required"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	HealthFacilityID int    `json:"healthFacilityId"`
}

type UserRequest struct {
	UserID           int    `json:"userID" validate:"omitempty,record_id"`
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Address          string `json:"address"`
	PhoneNumber      string `json:"phoneNumber"`
	Role             int    `json:"role"`
	HealthFacilityID int    `json:"healthFacilityId"`
}

type recordsService struct {
	api upstream.API
	log *slog.Logger
}

func NewRecordsService(api upstream.API, log *slog.Logger) RecordsService {
	return &recordsService{api: api, log: log}
}

// audit builds the actor tags: creates carry createdBy, edits modifiedBy.
func audit(isEdit bool, actor string) model.Audit {
	if isEdit {
		return model.Audit{ModifiedBy: actor}
	}
	return model.Audit{CreatedBy: actor}
}

func (s *recordsService) Facilities(ctx context.Context) ([]model.HealthFacility, error) {
	return s.api.Facilities(ctx)
}

func (s *recordsService) SaveFacility(ctx context.Context, req *FacilityRequest, actor string) (string, error) {
	if err := validator.FirstError(req); err != nil {
		return "", err
	}
	return s.api.SaveFacility(ctx, model.FacilitySave{
		HealthFacility: model.HealthFacility{
			ID:       req.ID,
			Name:     req.Name,
			District: req.District,
			Region:   req.Region,
			State:    req.State,
			Country:  req.Country,
		},
		Audit: audit(req.ID != 0, actor),
	})
}

func (s *recordsService) DeleteFacility(ctx context.Context, id int, actor string) error {
	_, err := s.api.SaveFacility(ctx, model.FacilitySave{
		HealthFacility: model.HealthFacility{ID: id},
		Audit:          model.Audit{IsDeleted: model.SoftDeleted, ModifiedBy: actor},
	})
	return err
}

func (s *recordsService) Workers(ctx context.Context) ([]model.HealthWorker, error) {
	return s.api.Workers(ctx)
}

func (s *recordsService) SaveWorker(ctx context.Context, req *WorkerRequest, actor string) (string, error) {
	if err := validator.FirstError(req); err != nil {
		return "", err
	}
	return s.api.SaveWorker(ctx, model.WorkerSave{
		HealthWorker: model.HealthWorker{
			ID:               req.ID,
			Name:             req.Name,
			Designation:      req.Designation,
			Email:            req.Email,
			PhoneNumber:      req.PhoneNumber,
			HealthFacilityID: req.HealthFacilityID,
		},
		Audit: audit(req.ID != 0, actor),
	})
}

func (s *recordsService) DeleteWorker(ctx context.Context, id int, actor string) error {
	_, err := s.api.SaveWorker(ctx, model.WorkerSave{
		HealthWorker: model.HealthWorker{ID: id},
		Audit:        model.Audit{IsDeleted: model.SoftDeleted, ModifiedBy: actor},
	})
	return err
}

func (s *recordsService) Patients(ctx context.Context) ([]model.Patient, error) {
	return s.api.Patients(ctx)
}

func (s *recordsService) SavePatient(ctx context.Context, req *PatientRequest, actor string) (string, error) {
	if err := validator.FirstError(req); err != nil {
		return "", err
	}
	return s.api.SavePatient(ctx, model.PatientSave{
		Patient: model.Patient{
			ID:               req.ID,
			Name:             req.Name,
			Gender:           req.Gender,
			Address:          req.Address,
			HealthFacilityID: req.HealthFacilityID,
		},
		Audit: audit(req.ID != 0, actor),
	})
}

func (s *recordsService) DeletePatient(ctx context.Context, id int, actor string) error {
	_, err := s.api.SavePatient(ctx, model.PatientSave{
		Patient: model.Patient{ID: id},
		Audit:   model.Audit{IsDeleted: model.SoftDeleted, ModifiedBy: actor},
	})
	return err
}

func (s *recordsService) Users(ctx context.Context) ([]model.User, error) {
	return s.api.Users(ctx)
}

func (s *recordsService) SaveUser(ctx context.Context, req *UserRequest, actor string) (string, error) {
	if err := validator.FirstError(req); err != nil {
		return "", err
	}
	return s.api.SaveUser(ctx, model.UserSave{
		User: model.User{
			UserID:           req.UserID,
			Name:             req.Name,
			Email:            req.Email,
			Address:          req.Address,
			PhoneNumber:      req.PhoneNumber,
			Role:             req.Role,
			HealthFacilityID: req.HealthFacilityID,
		},
		Audit: audit(req.UserID != 0, actor),
	})
}

func (s *recordsService) DeleteUser(ctx context.Context, id int, actor string) error {
	_, err := s.api.SaveUser(ctx, model.UserSave{
		User:  model.User{UserID: id},
		Audit: model.Audit{IsDeleted: model.SoftDeleted, ModifiedBy: actor},
	})
	return err
}

func (s *recordsService) Dropdowns(ctx context.Context) (*model.Dropdowns, error) {
	return s.api.Dropdowns(ctx)
}
