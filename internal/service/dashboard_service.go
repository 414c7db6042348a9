package service

import (
	"context"
	"log/slog"
	"sync"

	"go-health-console/internal/model"
	"go-health-console/internal/upstream"
)

type DashboardService interface {
	Charts(ctx context.Context) *Charts
}

// Charts is the dashboard view-model: one label/value set per chart.
type Charts struct {
	PatientsPerFacility model.ChartData `json:"patientsPerFacility"`
	WorkersPerRegion    model.ChartData `json:"workersPerRegion"`
	GenderDistribution  model.ChartData `json:"genderDistribution"`
}

type dashboardService struct {
	api upstream.API
	log *slog.Logger
}

func NewDashboardService(api upstream.API, log *slog.Logger) DashboardService {
	return &dashboardService{api: api, log: log}
}

// Charts issues the three aggregate fetches concurrently. Each failure is
// logged and leaves that chart empty; one failing never blocks the others,
// so there is no collective error to return.
func (s *dashboardService) Charts(ctx context.Context) *Charts {
	var charts Charts
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		rows, err := s.api.PatientsPerFacility(ctx)
		if err != nil {
			s.log.Warn("patients-per-facility fetch failed", "error", err)
			return
		}
		for _, r := range rows {
			charts.PatientsPerFacility.Labels = append(charts.PatientsPerFacility.Labels, r.FacilityName)
			charts.PatientsPerFacility.Values = append(charts.PatientsPerFacility.Values, r.PatientCount)
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := s.api.WorkersPerRegion(ctx)
		if err != nil {
			s.log.Warn("workers-per-region fetch failed", "error", err)
			return
		}
		for _, r := range rows {
			charts.WorkersPerRegion.Labels = append(charts.WorkersPerRegion.Labels, r.Region)
			charts.WorkersPerRegion.Values = append(charts.WorkersPerRegion.Values, r.WorkerCount)
		}
	}()

	go func() {
		defer wg.Done()
		rows, err := s.api.GenderDistribution(ctx)
		if err != nil {
			s.log.Warn("gender-distribution fetch failed", "error", err)
			return
		}
		for _, r := range rows {
			charts.GenderDistribution.Labels = append(charts.GenderDistribution.Labels, r.Gender)
			charts.GenderDistribution.Values = append(charts.GenderDistribution.Values, r.PatientCount)
		}
	}()

	wg.Wait()
	return &charts
}
