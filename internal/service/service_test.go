package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go-health-console/internal/model"
	"go-health-console/internal/session"
	"go-health-console/internal/upstream"
	"go-health-console/pkg/jwt"
)

// fakeAPI is a programmable upstream double. Each field overrides one call;
// unset calls answer empty.
type fakeAPI struct {
	loginFn        func(email, password string) (*model.LoginData, error)
	facilities     []model.HealthFacility
	savedFacility  *model.FacilitySave
	savedWorker    *model.WorkerSave
	savedPatient   *model.PatientSave
	savedUser      *model.UserSave
	mappedRole     *model.MapRoleRequest
	deletedRole    *model.RoleDelete
	saveErr        error
	chartsFailures map[string]error
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*model.LoginData, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return &model.LoginData{}, nil
}

func (f *fakeAPI) Facilities(ctx context.Context) ([]model.HealthFacility, error) {
	return f.facilities, nil
}

func (f *fakeAPI) SaveFacility(ctx context.Context, req model.FacilitySave) (string, error) {
	f.savedFacility = &req
	return "Record Saved Successfully", f.saveErr
}

func (f *fakeAPI) Workers(ctx context.Context) ([]model.HealthWorker, error) { return nil, nil }

func (f *fakeAPI) SaveWorker(ctx context.Context, req model.WorkerSave) (string, error) {
	f.savedWorker = &req
	return "Record Saved Successfully", f.saveErr
}

func (f *fakeAPI) Patients(ctx context.Context) ([]model.Patient, error) { return nil, nil }

func (f *fakeAPI) SavePatient(ctx context.Context, req model.PatientSave) (string, error) {
	f.savedPatient = &req
	return "Record Saved Successfully", f.saveErr
}

func (f *fakeAPI) Users(ctx context.Context) ([]model.User, error) { return nil, nil }

func (f *fakeAPI) SaveUser(ctx context.Context, req model.UserSave) (string, error) {
	f.savedUser = &req
	return "Record Saved Successfully", f.saveErr
}

func (f *fakeAPI) Dropdowns(ctx context.Context) (*model.Dropdowns, error) {
	return &model.Dropdowns{}, nil
}

func (f *fakeAPI) Roles(ctx context.Context) ([]model.Role, error) { return nil, nil }

func (f *fakeAPI) RoleMappings(ctx context.Context, roleID, userID int) ([]model.ActivityPermission, error) {
	return nil, nil
}

func (f *fakeAPI) MapRole(ctx context.Context, req model.MapRoleRequest) (string, error) {
	f.mappedRole = &req
	return "Role Saved Successfully", f.saveErr
}

func (f *fakeAPI) DeleteRole(ctx context.Context, req model.RoleDelete) (string, error) {
	f.deletedRole = &req
	return "Role Deleted Successfully", f.saveErr
}

func (f *fakeAPI) ActivityLogs(ctx context.Context) ([]model.LogEntry, error) { return nil, nil }

func (f *fakeAPI) PatientsPerFacility(ctx context.Context) ([]model.FacilityPatientCount, error) {
	if err := f.chartsFailures["patients"]; err != nil {
		return nil, err
	}
	return []model.FacilityPatientCount{{FacilityName: "Accra Central Clinic", PatientCount: 12}}, nil
}

func (f *fakeAPI) WorkersPerRegion(ctx context.Context) ([]model.RegionWorkerCount, error) {
	if err := f.chartsFailures["workers"]; err != nil {
		return nil, err
	}
	return []model.RegionWorkerCount{{Region: "Ashanti", WorkerCount: 4}}, nil
}

func (f *fakeAPI) GenderDistribution(ctx context.Context) ([]model.GenderCount, error) {
	if err := f.chartsFailures["gender"]; err != nil {
		return nil, err
	}
	return []model.GenderCount{{Gender: "Female", PatientCount: 7}}, nil
}

var _ upstream.API = (*fakeAPI)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSessions() session.Repository {
	return session.New(session.NewStorage(""), time.Hour, testLogger())
}

func TestAuthServiceLogin(t *testing.T) {
	loginData := &model.LoginData{
		UserProfile: model.UserProfile{UserID: 3, Name: "Admin", Email: "admin@clinic.org"},
		Permission: []model.ActivityPermission{
			{ActivityID: 1, ActivityName: model.ActivityHome, CanView: "True"},
			{ActivityID: 2, ActivityName: model.ActivityUserManagement, CanView: "True", CanCreate: "True"},
			{ActivityID: 6, ActivityName: model.ActivityPatient, CanView: "False"},
		},
	}

	t.Run("Success Creates Session And Menu", func(t *testing.T) {
		api := &fakeAPI{loginFn: func(email, password string) (*model.LoginData, error) {
			return loginData, nil
		}}
		sessions := testSessions()
		svc := NewAuthService(api, sessions, time.Hour, testLogger())

		res, err := svc.Login(context.Background(), &LoginRequest{Email: "admin@clinic.org", Password: "secret"})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		claims, err := jwt.ValidateSessionToken(res.Token)
		if err != nil {
			t.Fatalf("issued token does not validate: %v", err)
		}
		if claims.UserID != 3 || claims.Name != "Admin" {
			t.Errorf("unexpected claims: %+v", claims)
		}

		sess, err := sessions.Get(claims.SessionID)
		if err != nil || !sess.Authenticated() {
			t.Fatalf("session record missing: %v", err)
		}
		if len(sess.Permissions) != 3 {
			t.Errorf("expected 3 stored grants, got %d", len(sess.Permissions))
		}

		// Menu holds the viewable entries only, input order preserved.
		if len(res.Menu) != 2 {
			t.Fatalf("expected 2 menu entries, got %d", len(res.Menu))
		}
		if res.Menu[0].Name != model.ActivityHome || res.Menu[1].Name != model.ActivityUserManagement {
			t.Errorf("unexpected menu: %+v", res.Menu)
		}
	})

	t.Run("Rejected Credentials", func(t *testing.T) {
		api := &fakeAPI{loginFn: func(email, password string) (*model.LoginData, error) {
			return nil, &upstream.APIError{StatusCode: "01", Message: "Invalid Email or Password"}
		}}
		svc := NewAuthService(api, testSessions(), time.Hour, testLogger())

		_, err := svc.Login(context.Background(), &LoginRequest{Email: "a@b.c", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("Auth Endpoint HTTP Error Reads As Bad Credentials", func(t *testing.T) {
		api := &fakeAPI{loginFn: func(email, password string) (*model.LoginData, error) {
			return nil, &upstream.HTTPError{Status: 401}
		}}
		svc := NewAuthService(api, testSessions(), time.Hour, testLogger())

		_, err := svc.Login(context.Background(), &LoginRequest{Email: "a@b.c", Password: "pw"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("Transport Failure Is Unavailable", func(t *testing.T) {
		api := &fakeAPI{loginFn: func(email, password string) (*model.LoginData, error) {
			return nil, errors.New("dial tcp: connection refused")
		}}
		svc := NewAuthService(api, testSessions(), time.Hour, testLogger())

		_, err := svc.Login(context.Background(), &LoginRequest{Email: "a@b.c", Password: "pw"})
		if !errors.Is(err, ErrLoginUnavailable) {
			t.Errorf("got %v, want ErrLoginUnavailable", err)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewAuthService(&fakeAPI{}, testSessions(), time.Hour, testLogger())

		cases := []struct {
			name string
			req  LoginRequest
		}{
			{"Missing Email", LoginRequest{Password: "pw"}},
			{"Malformed Email", LoginRequest{Email: "not-an-email", Password: "pw"}},
			{"Missing Password", LoginRequest{Email: "a@b.c"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := svc.Login(context.Background(), &tc.req); err == nil {
					t.Error("expected validation error, got nil")
				}
			})
		}
	})
}

func TestAuthServiceLogout(t *testing.T) {
	sessions := testSessions()
	svc := NewAuthService(&fakeAPI{}, sessions, time.Hour, testLogger())

	_ = sessions.Set("sid-1", &model.Session{User: &model.UserProfile{UserID: 3}})
	if err := svc.Logout(context.Background(), "sid-1"); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	sess, err := sessions.Get("sid-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if sess.Authenticated() {
		t.Error("session should be revoked after logout")
	}
}

func TestRecordsServiceActorTags(t *testing.T) {
	t.Run("Create Tags CreatedBy", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewRecordsService(api, testLogger())

		_, err := svc.SaveFacility(context.Background(), &FacilityRequest{Name: "Tamale North"}, "Admin")
		if err != nil {
			t.Fatalf("SaveFacility failed: %v", err)
		}
		if api.savedFacility.CreatedBy != "Admin" || api.savedFacility.ModifiedBy != "" {
			t.Errorf("unexpected audit: %+v", api.savedFacility.Audit)
		}
		if api.savedFacility.IsDeleted != "" {
			t.Error("create must not carry the delete flag")
		}
	})

	t.Run("Edit Tags ModifiedBy", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewRecordsService(api, testLogger())

		_, err := svc.SaveFacility(context.Background(), &FacilityRequest{ID: 4, Name: "Tamale North"}, "Admin")
		if err != nil {
			t.Fatalf("SaveFacility failed: %v", err)
		}
		if api.savedFacility.ModifiedBy != "Admin" || api.savedFacility.CreatedBy != "" {
			t.Errorf("unexpected audit: %+v", api.savedFacility.Audit)
		}
	})

	t.Run("Delete Is A Flagged Save", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewRecordsService(api, testLogger())

		if err := svc.DeleteFacility(context.Background(), 4, "Admin"); err != nil {
			t.Fatalf("DeleteFacility failed: %v", err)
		}
		if api.savedFacility.ID != 4 {
			t.Errorf("id = %d, want 4", api.savedFacility.ID)
		}
		if api.savedFacility.IsDeleted != model.SoftDeleted {
			t.Errorf("isDeleted = %q, want %q", api.savedFacility.IsDeleted, model.SoftDeleted)
		}
		if api.savedFacility.ModifiedBy != "Admin" {
			t.Errorf("modifiedBy = %q", api.savedFacility.ModifiedBy)
		}
	})

	t.Run("User Key Is UserID", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewRecordsService(api, testLogger())

		_, err := svc.SaveUser(context.Background(), &UserRequest{
			UserID: 9, Name: "Efua", Email: "efua@clinic.org", Role: 2,
		}, "Admin")
		if err != nil {
			t.Fatalf("SaveUser failed: %v", err)
		}
		if api.savedUser.UserID != 9 || api.savedUser.Role != 2 {
			t.Errorf("unexpected payload: %+v", api.savedUser.User)
		}
		if api.savedUser.ModifiedBy != "Admin" {
			t.Error("non-zero UserID is an edit")
		}
	})
}

func TestRecordsServiceValidation(t *testing.T) {
	api := &fakeAPI{}
	svc := NewRecordsService(api, testLogger())

	t.Run("Name Required", func(t *testing.T) {
		if _, err := svc.SavePatient(context.Background(), &PatientRequest{Gender: "Female"}, "Admin"); err == nil {
			t.Error("expected validation error")
		}
		if api.savedPatient != nil {
			t.Error("invalid request must not reach the upstream")
		}
	})

	t.Run("ID Zero Is A Create, Negative Rejected", func(t *testing.T) {
		if _, err := svc.SaveFacility(context.Background(), &FacilityRequest{Name: "Tamale North"}, "Admin"); err != nil {
			t.Errorf("zero id should pass as create: %v", err)
		}
		if _, err := svc.SaveFacility(context.Background(), &FacilityRequest{ID: -3, Name: "Tamale North"}, "Admin"); err == nil {
			t.Error("negative id should fail validation")
		}
	})

	t.Run("Worker Email Optional But Checked", func(t *testing.T) {
		if _, err := svc.SaveWorker(context.Background(), &WorkerRequest{Name: "Kojo", Email: "bad-email"}, "Admin"); err == nil {
			t.Error("expected validation error for malformed email")
		}
		if _, err := svc.SaveWorker(context.Background(), &WorkerRequest{Name: "Kojo"}, "Admin"); err != nil {
			t.Errorf("empty email should pass: %v", err)
		}
	})
}

func TestRoleServiceSave(t *testing.T) {
	t.Run("Prunes All-False Mappings", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewRoleService(api, testLogger())

		_, err := svc.Save(context.Background(), &SaveRoleRequest{
			RoleName: "Supervisor",
			Mappings: []model.RoleMapping{
				{ActivityID: 1, CanView: true},
				{ActivityID: 2},
				{ActivityID: 3, CanDelete: true},
			},
		}, "Admin")
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got := api.mappedRole
		if got.IsDeleted != "0" || got.UserName != "Admin" {
			t.Errorf("unexpected payload: %+v", got)
		}
		if len(got.RoleMappings) != 2 {
			t.Fatalf("expected 2 mappings after pruning, got %d", len(got.RoleMappings))
		}
		if got.RoleMappings[0].ActivityID != 1 || got.RoleMappings[1].ActivityID != 3 {
			t.Errorf("unexpected mappings: %+v", got.RoleMappings)
		}
	})

	t.Run("Role Name Required", func(t *testing.T) {
		api := &fakeAPI{}
		svc := NewRoleService(api, testLogger())

		if _, err := svc.Save(context.Background(), &SaveRoleRequest{}, "Admin"); err == nil {
			t.Error("expected validation error")
		}
		if api.mappedRole != nil {
			t.Error("invalid request must not reach the upstream")
		}
	})
}

func TestRoleServiceDelete(t *testing.T) {
	api := &fakeAPI{}
	svc := NewRoleService(api, testLogger())

	if err := svc.Delete(context.Background(), 5, "Admin"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got := api.deletedRole
	if got.RoleID != 5 || got.IsDeleted != model.SoftDeleted || got.ModifiedBy != "Admin" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestDashboardServiceCharts(t *testing.T) {
	t.Run("All Fetches Succeed", func(t *testing.T) {
		svc := NewDashboardService(&fakeAPI{}, testLogger())

		charts := svc.Charts(context.Background())
		if len(charts.PatientsPerFacility.Labels) != 1 || charts.PatientsPerFacility.Labels[0] != "Accra Central Clinic" {
			t.Errorf("unexpected patient chart: %+v", charts.PatientsPerFacility)
		}
		if len(charts.WorkersPerRegion.Values) != 1 || charts.WorkersPerRegion.Values[0] != 4 {
			t.Errorf("unexpected worker chart: %+v", charts.WorkersPerRegion)
		}
		if len(charts.GenderDistribution.Labels) != 1 || charts.GenderDistribution.Labels[0] != "Female" {
			t.Errorf("unexpected gender chart: %+v", charts.GenderDistribution)
		}
	})

	t.Run("One Failure Leaves Others Populated", func(t *testing.T) {
		api := &fakeAPI{chartsFailures: map[string]error{
			"workers": &upstream.HTTPError{Status: 500},
		}}
		svc := NewDashboardService(api, testLogger())

		charts := svc.Charts(context.Background())
		if len(charts.WorkersPerRegion.Labels) != 0 {
			t.Errorf("failed chart should be empty: %+v", charts.WorkersPerRegion)
		}
		if len(charts.PatientsPerFacility.Labels) != 1 || len(charts.GenderDistribution.Labels) != 1 {
			t.Error("independent charts should still populate")
		}
	})
}
